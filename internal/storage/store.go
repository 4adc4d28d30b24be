// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tastyhub/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// UserStore persists accounts and profiles.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser overwrites the profile fields of an existing user.
	UpdateUser(ctx context.Context, user *models.User) error
}

// ReservationStore persists table reservations.
type ReservationStore interface {
	// CreateReservation persists a reservation, generating ID and CreatedAt if unset.
	CreateReservation(ctx context.Context, r *models.Reservation) error

	// GetReservation returns ErrNotFound when the reservation does not exist.
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)

	// ListReservationsByUser returns a user's reservations, newest booking first.
	ListReservationsByUser(ctx context.Context, userID string) ([]*models.Reservation, error)

	UpdateReservationStatus(ctx context.Context, id, status string) error
}

// OrderStore records checked-out orders.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
}

// StateStore keeps small per-user JSON blobs: cart contents, the active
// deal, favorites and preferences.
type StateStore interface {
	// GetState returns nil and no error when the key is absent.
	GetState(ctx context.Context, userID, key string) ([]byte, error)
	PutState(ctx context.Context, userID, key string, value []byte) error
	DeleteState(ctx context.Context, userID, key string) error
}

// Store aggregates every storage concern.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	ReservationStore
	OrderStore
	StateStore

	// Close releases any resources held by the store.
	Close() error
}
