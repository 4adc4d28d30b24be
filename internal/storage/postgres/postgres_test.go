package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	store, err := New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser(uuid.NewString()+"@example.com", "Pat", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, user.Email)
	if err != nil || got == nil {
		t.Fatalf("GetUserByEmail = %v, %v", got, err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %s, want %s", got.ID, user.ID)
	}

	r := &models.Reservation{
		UserID:     user.ID,
		LocationID: "downtown",
		ReservedAt: 2000000000,
		PartySize:  4,
		Name:       "Pat",
		Email:      user.Email,
		Status:     models.ReservationConfirmed,
	}
	if err := store.CreateReservation(ctx, r); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if err := store.UpdateReservationStatus(ctx, r.ID, models.ReservationCancelled); err != nil {
		t.Fatalf("UpdateReservationStatus: %v", err)
	}
	fetched, err := store.GetReservation(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if fetched.Status != models.ReservationCancelled {
		t.Errorf("Status = %s, want cancelled", fetched.Status)
	}
	if _, err := store.GetReservation(ctx, uuid.NewString()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing reservation err = %v, want ErrNotFound", err)
	}

	if err := store.PutState(ctx, user.ID, storage.KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("PutState: %v", err)
	}
	value, err := store.GetState(ctx, user.ID, storage.KeyCart)
	if err != nil || string(value) != "[]" {
		t.Errorf("GetState = %q, %v", value, err)
	}
}
