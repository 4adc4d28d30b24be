package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
	"github.com/mmynk/tastyhub/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "tastyhub-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, "Test User", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser and lookups", func(t *testing.T) {
		user := createUser(t, store, "alice@example.com")

		byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil || byEmail == nil {
			t.Fatalf("GetUserByEmail = %v, %v", byEmail, err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("ID mismatch: got %s, want %s", byEmail.ID, user.ID)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil || byID == nil {
			t.Fatalf("GetUserByID = %v, %v", byID, err)
		}
		if byID.PasswordHash != "hash" {
			t.Errorf("PasswordHash = %q, want hash", byID.PasswordHash)
		}
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		user, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil || user != nil {
			t.Errorf("GetUserByEmail = %v, %v; want nil, nil", user, err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected error for duplicate email")
		}
	})

	t.Run("UpdateUser persists profile", func(t *testing.T) {
		user := createUser(t, store, "bob@example.com")
		user.Phone = "555-0100"
		user.DietaryPreferences = []string{"vegan"}
		if err := store.UpdateUser(ctx, user); err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}

		got, _ := store.GetUserByID(ctx, user.ID)
		if got.Phone != "555-0100" || len(got.DietaryPreferences) != 1 {
			t.Errorf("profile not updated: %+v", got)
		}

		ghost := &models.User{ID: "ghost"}
		if err := store.UpdateUser(ctx, ghost); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestReservations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "carol@example.com")
	base := time.Date(2027, 5, 1, 19, 0, 0, 0, time.UTC).Unix()

	for i, size := range []int{2, 4} {
		r := &models.Reservation{
			UserID:     user.ID,
			LocationID: "downtown",
			ReservedAt: base + int64(i)*3600,
			PartySize:  size,
			Name:       "Carol",
			Email:      "carol@example.com",
			Status:     models.ReservationConfirmed,
		}
		if err := store.CreateReservation(ctx, r); err != nil {
			t.Fatalf("CreateReservation failed: %v", err)
		}
		if r.ID == "" || r.CreatedAt == 0 {
			t.Error("Expected ID and CreatedAt to be generated")
		}
	}

	list, err := store.ListReservationsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListReservationsByUser failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 reservations, got %d", len(list))
	}
	if list[0].PartySize != 4 {
		t.Errorf("Expected latest booking first, got party of %d", list[0].PartySize)
	}

	if err := store.UpdateReservationStatus(ctx, list[0].ID, models.ReservationCancelled); err != nil {
		t.Fatalf("UpdateReservationStatus failed: %v", err)
	}
	got, err := store.GetReservation(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("GetReservation failed: %v", err)
	}
	if got.Status != models.ReservationCancelled {
		t.Errorf("Status = %s, want cancelled", got.Status)
	}

	if _, err := store.GetReservation(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "dave@example.com")

	order := &models.Order{
		ID:     "order-1",
		UserID: user.ID,
		Items: []models.CartItem{
			{ID: "turkey-club", Name: "Turkey Club Sandwich", Price: money.MustParse("9.99"), Quantity: 2},
		},
		ItemCount: 2,
		Total:     money.MustParse("19.98"),
		PlacedAt:  time.Now().Unix(),
	}
	if err := store.CreateOrder(ctx, order); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	orders, err := store.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListOrdersByUser failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("Expected 1 order, got %d", len(orders))
	}
	if !orders[0].Total.Equal(order.Total) || len(orders[0].Items) != 1 {
		t.Errorf("order mismatch: %+v", orders[0])
	}
}

func TestState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	got, err := store.GetState(ctx, "u1", storage.KeyCart)
	if err != nil || got != nil {
		t.Fatalf("GetState on empty = %q, %v", got, err)
	}

	store.PutState(ctx, "u1", storage.KeyCart, []byte(`[1]`))
	store.PutState(ctx, "u1", storage.KeyCart, []byte(`[2]`))
	store.PutState(ctx, "u2", storage.KeyCart, []byte(`[3]`))

	got, _ = store.GetState(ctx, "u1", storage.KeyCart)
	if string(got) != `[2]` {
		t.Errorf("GetState = %q, want last write [2]", got)
	}

	if err := store.DeleteState(ctx, "u1", storage.KeyCart); err != nil {
		t.Fatalf("DeleteState failed: %v", err)
	}
	if got, _ := store.GetState(ctx, "u1", storage.KeyCart); got != nil {
		t.Errorf("state not deleted: %q", got)
	}
	if got, _ := store.GetState(ctx, "u2", storage.KeyCart); string(got) != `[3]` {
		t.Errorf("other user's state affected: %q", got)
	}
}
