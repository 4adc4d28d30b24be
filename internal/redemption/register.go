package redemption

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

// ActiveDeal is the single-slot register of the deal a user has
// activated. Activating overwrites; Consume and Clear empty it.
type ActiveDeal struct {
	mu      sync.Mutex
	blob    storage.Blob
	current *models.Deal
}

type activeDealRecord struct {
	DealID string `json:"deal_id"`
}

// LoadActiveDeal restores the register. A stored ID that is malformed,
// unknown to deals, or expired is discarded.
func LoadActiveDeal(ctx context.Context, blob storage.Blob, deals *catalog.Deals, now time.Time) (*ActiveDeal, error) {
	r := &ActiveDeal{blob: blob}

	var rec activeDealRecord
	ok, err := storage.LoadJSON(ctx, blob, &rec)
	if err != nil {
		return nil, fmt.Errorf("failed to load active deal: %w", err)
	}
	if !ok {
		return r, nil
	}

	deal, found := deals.ByID(rec.DealID)
	if !found || deal.Expired(now) {
		slog.Warn("Discarding stale active deal", "deal_id", rec.DealID)
		if err := blob.Delete(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear active deal: %w", err)
		}
		return r, nil
	}
	r.current = &deal
	return r, nil
}

// Activate makes deal the active one, replacing any previous deal.
func (r *ActiveDeal) Activate(ctx context.Context, deal models.Deal, now time.Time) error {
	if deal.Expired(now) {
		return ErrDealExpired
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := storage.SaveJSON(ctx, r.blob, activeDealRecord{DealID: deal.ID}); err != nil {
		return fmt.Errorf("failed to save active deal: %w", err)
	}
	r.current = &deal
	return nil
}

// Current returns the active deal without consuming it.
func (r *ActiveDeal) Current() (models.Deal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return models.Deal{}, false
	}
	return *r.current, true
}

// Consume returns the active deal and empties the register.
func (r *ActiveDeal) Consume(ctx context.Context) (models.Deal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return models.Deal{}, false, nil
	}
	if err := r.blob.Delete(ctx); err != nil {
		return models.Deal{}, false, fmt.Errorf("failed to clear active deal: %w", err)
	}
	deal := *r.current
	r.current = nil
	return deal, true, nil
}

// Clear empties the register.
func (r *ActiveDeal) Clear(ctx context.Context) error {
	_, _, err := r.Consume(ctx)
	return err
}
