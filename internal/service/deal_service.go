package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/cart"
	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/metrics"
	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/redemption"
)

// DealService lists deals and drives the caller's redemption session.
type DealService struct {
	menu     *catalog.Catalog
	deals    *catalog.Deals
	sessions *Sessions
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewDealService creates a DealService. m may be nil.
func NewDealService(menu *catalog.Catalog, deals *catalog.Deals, sessions *Sessions, m *metrics.Metrics) *DealService {
	return &DealService{menu: menu, deals: deals, sessions: sessions, metrics: m, now: time.Now}
}

// ListDeals returns the deals that have not expired.
func (s *DealService) ListDeals(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListDealsResponse], error) {
	return connect.NewResponse(&ListDealsResponse{Deals: s.deals.Active(s.now())}), nil
}

// GetDeal returns a deal and the menu items it applies to.
func (s *DealService) GetDeal(ctx context.Context, req *connect.Request[GetDealRequest]) (*connect.Response[GetDealResponse], error) {
	deal, ok := s.deals.ByID(req.Msg.ID)
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", redemption.ErrUnknownDeal, req.Msg.ID))
	}
	return connect.NewResponse(&GetDealResponse{
		Deal:     deal,
		Eligible: catalog.FilterByDeal(deal, s.menu.All()),
	}), nil
}

// ActivateDeal makes the deal the caller's active deal and opens a fresh
// redemption session, replacing any session in progress.
func (s *DealService) ActivateDeal(ctx context.Context, req *connect.Request[ActivateDealRequest]) (*connect.Response[RedemptionView], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("ActivateDeal request received", "user_id", userID, "deal_id", req.Msg.DealID)

	var view *RedemptionView
	err := s.sessions.With(ctx, userID, func(u *userState) error {
		session, err := u.deals.Activate(ctx, req.Msg.DealID)
		if err != nil {
			return err
		}
		view = redemptionView(session)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(view), nil
}

// GetRedemption returns the open session.
func (s *DealService) GetRedemption(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[RedemptionView], error) {
	var view *RedemptionView
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(u *userState) error {
		session, err := u.deals.Session()
		if err != nil {
			return err
		}
		view = redemptionView(session)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(view), nil
}

// ToggleItem selects or deselects an eligible item in the open session.
func (s *DealService) ToggleItem(ctx context.Context, req *connect.Request[ToggleItemRequest]) (*connect.Response[RedemptionView], error) {
	var view *RedemptionView
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(u *userState) error {
		session, err := u.deals.Session()
		if err != nil {
			return err
		}
		if err := session.ToggleID(req.Msg.ItemID); err != nil {
			return err
		}
		view = redemptionView(session)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(view), nil
}

// CommitDeal adds the priced selection to the cart. The cart accepts at
// most one deal; a second commit is refused and the session stays open.
func (s *DealService) CommitDeal(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CommitDealResponse], error) {
	userID := middleware.GetUserID(ctx)

	var (
		dealID string
		resp   *CommitDealResponse
	)
	err := s.sessions.With(ctx, userID, func(u *userState) error {
		session, err := u.deals.Session()
		if err != nil {
			return err
		}
		dealID = session.Deal().ID

		added, err := u.deals.Commit(ctx, u.cart)
		if err != nil {
			return err
		}
		resp = &CommitDealResponse{Added: added, Cart: cartView(u.cart)}
		return nil
	})
	s.recordCommit(dealID, err)
	if err != nil {
		slog.Warn("CommitDeal refused", "user_id", userID, "deal_id", dealID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Deal committed", "user_id", userID, "deal_id", dealID, "lines", len(resp.Added))
	return connect.NewResponse(resp), nil
}

// AbandonDeal closes the open session and clears the active deal.
func (s *DealService) AbandonDeal(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(u *userState) error {
		return u.deals.Abandon(ctx)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *DealService) recordCommit(dealID string, err error) {
	if s.metrics == nil || dealID == "" {
		return
	}
	outcome := metrics.OutcomeCommitted
	switch {
	case err == nil:
	case errors.Is(err, cart.ErrDealAlreadyApplied):
		outcome = metrics.OutcomeRejected
		s.metrics.CartRejections.Inc()
	case errors.Is(err, redemption.ErrEmptySelection):
		outcome = metrics.OutcomeEmpty
	case errors.Is(err, redemption.ErrIncomplete):
		outcome = metrics.OutcomeIncomplete
	default:
		return
	}
	s.metrics.DealCommits.WithLabelValues(dealID, outcome).Inc()
}

func redemptionView(s *redemption.Session) *RedemptionView {
	selected := s.Selected()
	ids := make([]string, len(selected))
	for i, m := range selected {
		ids[i] = m.ID
	}
	return &RedemptionView{
		Deal:       s.Deal(),
		Eligible:   nonNilItems(s.Eligible()),
		Selected:   ids,
		Quote:      s.Quote(),
		Validation: s.Validate(),
		State:      s.State().String(),
	}
}

func nonNilItems(items []models.MenuItem) []models.MenuItem {
	if items == nil {
		return []models.MenuItem{}
	}
	return items
}
