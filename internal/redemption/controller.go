package redemption

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
)

var (
	ErrNoActiveDeal = errors.New("no deal is active")
	ErrUnknownDeal  = errors.New("unknown deal")
)

// Controller owns a user's active-deal register and the redemption session
// that goes with it.
type Controller struct {
	menu    *catalog.Catalog
	deals   *catalog.Deals
	active  *ActiveDeal
	session *Session
	now     func() time.Time
}

// NewController resumes a session for the deal already in active, if any.
func NewController(menu *catalog.Catalog, deals *catalog.Deals, active *ActiveDeal) *Controller {
	c := &Controller{menu: menu, deals: deals, active: active, now: time.Now}
	if deal, ok := active.Current(); ok {
		c.session = NewSession(deal, menu)
	}
	return c
}

// Activate makes dealID the active deal and starts a fresh session,
// abandoning any session in progress.
func (c *Controller) Activate(ctx context.Context, dealID string) (*Session, error) {
	deal, ok := c.deals.ByID(dealID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDeal, dealID)
	}
	if err := c.active.Activate(ctx, deal, c.now()); err != nil {
		return nil, err
	}
	if c.session != nil {
		c.session.Abandon()
	}
	c.session = NewSession(deal, c.menu)
	return c.session, nil
}

// Session returns the open session.
func (c *Controller) Session() (*Session, error) {
	if c.session == nil {
		return nil, ErrNoActiveDeal
	}
	return c.session, nil
}

// Commit adds the session's priced selection to cart and clears the active
// deal so it cannot be applied twice.
func (c *Controller) Commit(ctx context.Context, cart Cart) ([]models.CartItem, error) {
	s, err := c.Session()
	if err != nil {
		return nil, err
	}
	if s.Deal().Expired(c.now()) {
		return nil, ErrDealExpired
	}
	items, err := s.Commit(ctx, cart)
	if err != nil {
		return nil, err
	}
	c.session = nil
	if err := c.active.Clear(ctx); err != nil {
		slog.Error("Failed to clear active deal after commit", "deal_id", s.Deal().ID, "error", err)
	}
	return items, nil
}

// Abandon drops the session and clears the active deal.
func (c *Controller) Abandon(ctx context.Context) error {
	if c.session != nil {
		c.session.Abandon()
		c.session = nil
	}
	return c.active.Clear(ctx)
}
