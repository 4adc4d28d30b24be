package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/tastyhub/internal/catalog"
)

// gatedState blocks reads for one user until release is closed.
type gatedState struct {
	slowUser string
	entered  chan struct{}
	release  chan struct{}
	once     sync.Once

	mu   sync.Mutex
	data map[string][]byte
}

func newGatedState(slowUser string) *gatedState {
	return &gatedState{
		slowUser: slowUser,
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
		data:     make(map[string][]byte),
	}
}

func (g *gatedState) GetState(ctx context.Context, userID, key string) ([]byte, error) {
	if userID == g.slowUser {
		g.once.Do(func() { close(g.entered) })
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.data[userID+"/"+key], nil
}

func (g *gatedState) PutState(ctx context.Context, userID, key string, value []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.data[userID+"/"+key] = value
	return nil
}

func (g *gatedState) DeleteState(ctx context.Context, userID, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.data, userID+"/"+key)
	return nil
}

func TestSessionsLoadDoesNotBlockOtherUsers(t *testing.T) {
	ctx := context.Background()
	state := newGatedState("slow")
	sessions := NewSessions(state, catalog.Default(), catalog.DefaultDeals())

	slowDone := make(chan error, 1)
	go func() {
		slowDone <- sessions.With(ctx, "slow", func(*userState) error { return nil })
	}()

	select {
	case <-state.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("slow user never started loading")
	}

	fastDone := make(chan error, 1)
	go func() {
		fastDone <- sessions.With(ctx, "fast", func(*userState) error { return nil })
	}()

	select {
	case err := <-fastDone:
		if err != nil {
			t.Fatalf("fast user failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fast user blocked behind another user's load")
	}

	close(state.release)
	if err := <-slowDone; err != nil {
		t.Fatalf("slow user failed: %v", err)
	}
}

func TestSessionsShareStatePerUser(t *testing.T) {
	ctx := context.Background()
	state := newGatedState("")
	sessions := NewSessions(state, catalog.Default(), catalog.DefaultDeals())

	const n = 8
	got := make([]*userState, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sessions.With(ctx, "u1", func(u *userState) error {
				got[i] = u
				return nil
			}); err != nil {
				t.Errorf("With failed: %v", err)
			}
		}()
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatalf("request %d saw a different state for the same user", i)
		}
	}

	sessions.Forget("u1")
	var after *userState
	if err := sessions.With(ctx, "u1", func(u *userState) error {
		after = u
		return nil
	}); err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if after == got[0] {
		t.Error("Forget kept the cached state")
	}
}
