// Package cart implements the per-user shopping cart and its single-deal
// exclusivity rule.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

var (
	// ErrDealAlreadyApplied rejects discounted lines while the cart already
	// holds lines from another redemption.
	ErrDealAlreadyApplied = errors.New("only one deal allowed per order")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidItem        = errors.New("cart item requires an id and a non-negative price")
	// ErrDealQuantity rejects raising a discounted line above one unit.
	ErrDealQuantity       = errors.New("deal items are limited to one each")
)

// Store holds one user's cart. Every mutation is written through to the
// backing blob before it becomes visible; a failed write leaves the cart
// unchanged.
type Store struct {
	mu    sync.Mutex
	items []models.CartItem
	blob  storage.Blob
}

// Load reads the persisted cart once. A corrupted value yields an empty cart.
func Load(ctx context.Context, blob storage.Blob) (*Store, error) {
	s := &Store{blob: blob}
	var items []models.CartItem
	ok, err := storage.LoadJSON(ctx, blob, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if ok {
		s.items = sanitize(items)
	}
	return s, nil
}

// AddItem adds one unit of item. A discounted item is rejected with
// ErrDealAlreadyApplied when the cart already has a discounted line.
func (s *Store) AddItem(ctx context.Context, item models.CartItem) error {
	return s.AddItems(ctx, []models.CartItem{item})
}

// AddItems adds every item or none of them. If any incoming item is
// discounted and the cart already holds a discounted line, the whole batch
// is rejected.
func (s *Store) AddItems(ctx context.Context, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range items {
		if it.ID == "" || it.Price.IsNegative() {
			return ErrInvalidItem
		}
	}
	if hasDiscount(items) && hasDiscount(s.items) {
		slog.Info("Rejected second deal", "incoming", len(items))
		return ErrDealAlreadyApplied
	}

	next := slices.Clone(s.items)
	for _, it := range items {
		if i := indexOf(next, it.ID); i >= 0 {
			next[i].Quantity++
			continue
		}
		it.Quantity = 1
		next = append(next, it)
	}
	return s.commit(ctx, next)
}

// AddDiscounted adds the priced lines of a deal redemption.
func (s *Store) AddDiscounted(ctx context.Context, items []models.CartItem) error {
	return s.AddItems(ctx, items)
}

// RemoveItem deletes the line with id. Missing ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.items, id)
	if i < 0 {
		return nil
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1))
}

// UpdateQuantity sets the quantity of a line; q <= 0 removes it.
// Discounted lines stay at one unit and reject q > 1 with ErrDealQuantity.
func (s *Store) UpdateQuantity(ctx context.Context, id string, q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.items, id)
	if i < 0 {
		return nil
	}
	if q > 1 && s.items[i].HasDiscount {
		return ErrDealQuantity
	}
	next := slices.Clone(s.items)
	if q <= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next[i].Quantity = q
	}
	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, nil)
}

// Items returns a copy of the cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// ItemCount is the sum of quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// TotalAmount is the sum of price * quantity.
func (s *Store) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.items)
}

// HasDiscountedItems reports whether any line came from a deal.
func (s *Store) HasDiscountedItems() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return hasDiscount(s.items)
}

// Checkout snapshots the cart into an order, hands it to place and clears
// the cart. If place fails the cart is left as it was. place may be nil.
//
// Once place succeeds the order stands: the cart is emptied in memory even
// when persisting the empty cart fails, so a retry cannot place it twice.
func (s *Store) Checkout(ctx context.Context, userID string, place func(context.Context, *models.Order) error) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil, ErrEmptyCart
	}
	order := &models.Order{
		ID:       uuid.New().String(),
		UserID:   userID,
		Items:    slices.Clone(s.items),
		Total:    total(s.items),
		PlacedAt: time.Now().Unix(),
	}
	for _, it := range s.items {
		order.ItemCount += it.Quantity
	}
	if place != nil {
		if err := place(ctx, order); err != nil {
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
	}
	if err := s.commit(ctx, nil); err != nil {
		s.items = []models.CartItem{}
		if derr := s.blob.Delete(ctx); derr != nil {
			slog.Error("Failed to clear persisted cart after checkout", "order", order.ID, "error", errors.Join(err, derr))
		}
	}
	return order, nil
}

// commit persists next and then installs it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []models.CartItem) error {
	if next == nil {
		next = []models.CartItem{}
	}
	if err := storage.SaveJSON(ctx, s.blob, next); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	s.items = next
	return nil
}

func indexOf(items []models.CartItem, id string) int {
	return slices.IndexFunc(items, func(it models.CartItem) bool { return it.ID == id })
}

func hasDiscount(items []models.CartItem) bool {
	return slices.ContainsFunc(items, func(it models.CartItem) bool { return it.HasDiscount })
}

func total(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// sanitize drops persisted lines that could not have been produced by the
// store, such as a zero quantity written by an older client.
func sanitize(items []models.CartItem) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID == "" || it.Quantity < 1 || it.Price.IsNegative() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FromMenuItem builds a full-price cart line for m.
func FromMenuItem(m models.MenuItem) models.CartItem {
	return models.CartItem{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Image:    m.Image,
		Category: m.Category,
		Quantity: 1,
	}
}
