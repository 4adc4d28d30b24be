package redemption

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
)

// State is the lifecycle position of a redemption session.
type State int

const (
	// Browsing: nothing selected yet.
	Browsing State = iota
	// Selecting: some items selected, deal not yet satisfied.
	Selecting
	// Valid: the selection satisfies the deal and can be committed.
	Valid
	// Committed: the priced selection was added to the cart.
	Committed
	// Abandoned: the user left or the deal was cleared.
	Abandoned
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Selecting:
		return "selecting"
	case Valid:
		return "valid"
	case Committed:
		return "committed"
	case Abandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cart receives the priced lines of a committed selection. The add must
// be all-or-nothing.
type Cart interface {
	AddDiscounted(ctx context.Context, items []models.CartItem) error
}

// Session tracks one user's selection against one deal.
// A Session is not safe for concurrent use.
type Session struct {
	deal     models.Deal
	eligible []models.MenuItem
	selected []models.MenuItem
	closed   State
}

// NewSession starts a redemption of deal over the items in menu.
func NewSession(deal models.Deal, menu *catalog.Catalog) *Session {
	return &Session{
		deal:     deal,
		eligible: catalog.FilterByDeal(deal, menu.All()),
	}
}

// Deal returns the deal being redeemed.
func (s *Session) Deal() models.Deal { return s.deal }

// Eligible returns the catalog items the deal can be used with.
func (s *Session) Eligible() []models.MenuItem { return slices.Clone(s.eligible) }

// Selected returns the current selection in selection order.
func (s *Session) Selected() []models.MenuItem { return slices.Clone(s.selected) }

// State derives the lifecycle state from the selection.
func (s *Session) State() State {
	switch {
	case s.closed != Browsing:
		return s.closed
	case len(s.selected) == 0:
		return Browsing
	case IsComplete(s.deal, s.selected):
		return Valid
	default:
		return Selecting
	}
}

// Toggle selects or deselects item.
func (s *Session) Toggle(item models.MenuItem) error {
	if s.closed != Browsing {
		return ErrSessionClosed
	}
	next, err := Toggle(s.deal, s.selected, item)
	if err != nil {
		return err
	}
	s.selected = next
	return nil
}

// ToggleID toggles the eligible item with id.
func (s *Session) ToggleID(id string) error {
	i := slices.IndexFunc(s.eligible, func(m models.MenuItem) bool { return m.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotEligible, id)
	}
	return s.Toggle(s.eligible[i])
}

// Quote prices the current selection.
func (s *Session) Quote() Quote { return Price(s.deal, s.selected) }

// Validate checks the current selection.
func (s *Session) Validate() Validation { return Check(s.deal, s.selected) }

// Commit prices the selection and adds it to cart in one step. Nothing is
// added when the selection is empty or incomplete, or when the cart
// refuses the lines; in those cases the session stays open.
func (s *Session) Commit(ctx context.Context, cart Cart) ([]models.CartItem, error) {
	if s.closed != Browsing {
		return nil, ErrSessionClosed
	}
	if len(s.selected) == 0 {
		return nil, ErrEmptySelection
	}
	if v := s.Validate(); !v.Complete {
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, v.Message)
	}

	items := CartItems(s.deal, s.Quote())
	if err := cart.AddDiscounted(ctx, items); err != nil {
		return nil, err
	}

	s.closed = Committed
	slog.Debug("Deal committed", "deal_id", s.deal.ID, "items", len(items))
	return items, nil
}

// Abandon ends the session without touching any cart.
func (s *Session) Abandon() {
	if s.closed == Browsing {
		s.closed = Abandoned
	}
}

// CartItems converts a quote into discounted cart lines. Line IDs are
// scoped by deal so they never merge with full-price lines of the same item.
func CartItems(deal models.Deal, q Quote) []models.CartItem {
	out := make([]models.CartItem, len(q.Lines))
	for i, l := range q.Lines {
		out[i] = models.CartItem{
			ID:          deal.ID + "/" + l.Item.ID,
			Name:        l.Item.Name,
			Price:       l.Price,
			Image:       l.Item.Image,
			Category:    l.Item.Category,
			Quantity:    1,
			HasDiscount: true,
			DealID:      deal.ID,
		}
	}
	return out
}
