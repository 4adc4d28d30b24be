package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmynk/tastyhub/internal/cart"
	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/redemption"
	"github.com/mmynk/tastyhub/internal/storage"
)

// userState is one user's cart and redemption controller. Its mutex
// serializes every request that touches them.
type userState struct {
	mu    sync.Mutex
	cart  *cart.Store
	deals *redemption.Controller
}

// Sessions loads per-user state on first use and keeps it in memory.
type Sessions struct {
	state storage.StateStore
	menu  *catalog.Catalog
	deals *catalog.Deals
	now   func() time.Time

	mu    sync.Mutex
	users map[string]*userState
}

// NewSessions creates an empty session cache over state.
func NewSessions(state storage.StateStore, menu *catalog.Catalog, deals *catalog.Deals) *Sessions {
	return &Sessions{
		state: state,
		menu:  menu,
		deals: deals,
		now:   time.Now,
		users: make(map[string]*userState),
	}
}

// With runs fn while holding userID's lock.
func (s *Sessions) With(ctx context.Context, userID string, fn func(*userState) error) error {
	u, err := s.get(ctx, userID)
	if err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u)
}

// Forget drops the cached state of userID. Persisted state is kept.
func (s *Sessions) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

// get returns the cached state of userID, loading it on first use. Loads
// run without s.mu held; when two requests race, the first stored state wins.
func (s *Sessions) get(ctx context.Context, userID string) (*userState, error) {
	s.mu.Lock()
	u, ok := s.users[userID]
	s.mu.Unlock()
	if ok {
		return u, nil
	}

	loaded, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	s.users[userID] = loaded
	return loaded, nil
}

func (s *Sessions) load(ctx context.Context, userID string) (*userState, error) {
	c, err := cart.Load(ctx, s.blob(userID, storage.KeyCart))
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for %s: %w", userID, err)
	}
	active, err := redemption.LoadActiveDeal(ctx, s.blob(userID, storage.KeyActiveDeal), s.deals, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load active deal for %s: %w", userID, err)
	}
	return &userState{
		cart:  c,
		deals: redemption.NewController(s.menu, s.deals, active),
	}, nil
}

func (s *Sessions) blob(userID, key string) storage.Blob {
	return storage.UserBlob{Store: s.state, UserID: userID, Key: key}
}
