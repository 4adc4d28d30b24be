package reservation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
	"github.com/mmynk/tastyhub/internal/storage/sqlite"
)

var fixedNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *models.User) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("pat@example.com", "Pat", "hash")
	user.Phone = "555-0100"
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	svc := NewService(store, store, catalog.DefaultLocations())
	svc.now = func() time.Time { return fixedNow }
	return svc, user
}

func tomorrow() int64 {
	return fixedNow.Add(24 * time.Hour).Unix()
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	t.Run("defaults contact from profile", func(t *testing.T) {
		r, err := svc.Create(ctx, user.ID, Request{LocationID: "downtown", ReservedAt: tomorrow(), PartySize: 2})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if r.ID == "" || r.Status != models.ReservationConfirmed {
			t.Errorf("reservation = %+v", r)
		}
		if r.Name != "Pat" || r.Email != "pat@example.com" || r.Phone != "555-0100" {
			t.Errorf("contact = %s/%s/%s", r.Name, r.Email, r.Phone)
		}
	})

	t.Run("explicit contact wins", func(t *testing.T) {
		r, err := svc.Create(ctx, user.ID, Request{
			LocationID: "uptown", ReservedAt: tomorrow(), PartySize: 6,
			Name: "Sam", Email: "sam@example.com", SpecialRequests: " window seat ",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if r.Name != "Sam" || r.Email != "sam@example.com" || r.SpecialRequests != "window seat" {
			t.Errorf("reservation = %+v", r)
		}
	})

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"party too small", Request{LocationID: "downtown", ReservedAt: tomorrow(), PartySize: 0}, ErrInvalidPartySize},
		{"party too large", Request{LocationID: "downtown", ReservedAt: tomorrow(), PartySize: 21}, ErrInvalidPartySize},
		{"unknown location", Request{LocationID: "mars", ReservedAt: tomorrow(), PartySize: 2}, ErrUnknownLocation},
		{"in the past", Request{LocationID: "downtown", ReservedAt: fixedNow.Add(-time.Hour).Unix(), PartySize: 2}, ErrPastTime},
		{"bad email", Request{LocationID: "downtown", ReservedAt: tomorrow(), PartySize: 2, Email: "nope"}, ErrMissingContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, user.ID, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestListAndCancel(t *testing.T) {
	ctx := context.Background()
	svc, user := setup(t)

	early, err := svc.Create(ctx, user.ID, Request{LocationID: "downtown", ReservedAt: tomorrow(), PartySize: 2})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	late, err := svc.Create(ctx, user.ID, Request{LocationID: "riverside", ReservedAt: tomorrow() + 3600, PartySize: 4})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != late.ID || list[1].ID != early.ID {
		t.Fatalf("list order wrong: %+v", list)
	}

	t.Run("other user cannot cancel", func(t *testing.T) {
		if _, err := svc.Cancel(ctx, "someone-else", early.ID); !errors.Is(err, ErrNotOwner) {
			t.Errorf("err = %v, want ErrNotOwner", err)
		}
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		for range 2 {
			r, err := svc.Cancel(ctx, user.ID, early.ID)
			if err != nil {
				t.Fatalf("Cancel failed: %v", err)
			}
			if r.Status != models.ReservationCancelled {
				t.Errorf("Status = %s", r.Status)
			}
		}
	})

	t.Run("missing reservation", func(t *testing.T) {
		if _, err := svc.Cancel(ctx, user.ID, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
