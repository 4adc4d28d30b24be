package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/cart"
	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/metrics"
	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
	"github.com/mmynk/tastyhub/internal/storage"
)

// CartService exposes the caller's cart and order history.
type CartService struct {
	menu     *catalog.Catalog
	orders   storage.OrderStore
	sessions *Sessions
	metrics  *metrics.Metrics
}

// NewCartService creates a CartService. m may be nil.
func NewCartService(menu *catalog.Catalog, orders storage.OrderStore, sessions *Sessions, m *metrics.Metrics) *CartService {
	return &CartService{menu: menu, orders: orders, sessions: sessions, metrics: m}
}

// GetCart returns the cart with its derived totals.
func (s *CartService) GetCart(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CartView], error) {
	return s.update(ctx, func(*userState) error { return nil })
}

// AddItem adds one unit of a menu item at full price.
func (s *CartService) AddItem(ctx context.Context, req *connect.Request[AddItemRequest]) (*connect.Response[CartView], error) {
	item, ok := s.menu.ByID(req.Msg.ItemID)
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errUnknownItem, req.Msg.ItemID))
	}
	return s.update(ctx, func(u *userState) error {
		return u.cart.AddItem(ctx, cart.FromMenuItem(item))
	})
}

// RemoveItem deletes a cart line. Unknown IDs are ignored.
func (s *CartService) RemoveItem(ctx context.Context, req *connect.Request[RemoveItemRequest]) (*connect.Response[CartView], error) {
	return s.update(ctx, func(u *userState) error {
		return u.cart.RemoveItem(ctx, req.Msg.ItemID)
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, req *connect.Request[UpdateQuantityRequest]) (*connect.Response[CartView], error) {
	return s.update(ctx, func(u *userState) error {
		return u.cart.UpdateQuantity(ctx, req.Msg.ItemID, req.Msg.Quantity)
	})
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CartView], error) {
	return s.update(ctx, func(u *userState) error {
		return u.cart.Clear(ctx)
	})
}

// Checkout records the cart as an order and empties it.
func (s *CartService) Checkout(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CheckoutResponse], error) {
	userID := middleware.GetUserID(ctx)

	var order *models.Order
	err := s.sessions.With(ctx, userID, func(u *userState) error {
		var err error
		order, err = u.cart.Checkout(ctx, userID, s.orders.CreateOrder)
		return err
	})
	if err != nil {
		slog.Warn("Checkout failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.Checkouts.Inc()
	}
	slog.Info("Order placed",
		"user_id", userID,
		"order_id", order.ID,
		"items", order.ItemCount,
		"total", money.Format(order.Total),
	)
	return connect.NewResponse(&CheckoutResponse{Order: *order}), nil
}

// ListOrders returns the caller's past orders, newest first.
func (s *CartService) ListOrders(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListOrdersResponse], error) {
	orders, err := s.orders.ListOrdersByUser(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, toConnectError(err)
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return connect.NewResponse(&ListOrdersResponse{Orders: orders}), nil
}

// update runs fn under the caller's lock and returns the resulting cart.
func (s *CartService) update(ctx context.Context, fn func(*userState) error) (*connect.Response[CartView], error) {
	var view CartView
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(u *userState) error {
		if err := fn(u); err != nil {
			return err
		}
		view = cartView(u.cart)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&view), nil
}

func cartView(c *cart.Store) CartView {
	items := c.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	total := c.TotalAmount()
	return CartView{
		Items:              items,
		ItemCount:          c.ItemCount(),
		Total:              total,
		TotalDisplay:       money.Format(total),
		HasDiscountedItems: c.HasDiscountedItems(),
	}
}
