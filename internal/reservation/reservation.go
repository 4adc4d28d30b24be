// Package reservation books and cancels tables at restaurant locations.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

// Party size bounds.
const (
	MinPartySize = 1
	MaxPartySize = 20
)

var (
	ErrInvalidPartySize = fmt.Errorf("party size must be between %d and %d", MinPartySize, MaxPartySize)
	ErrUnknownLocation  = errors.New("unknown location")
	ErrPastTime         = errors.New("reservation time must be in the future")
	ErrMissingContact   = errors.New("contact name and a valid email are required")
	ErrNotOwner         = errors.New("reservation belongs to another user")
)

// Request is the data a user submits to book a table.
type Request struct {
	LocationID      string `json:"location_id"`
	ReservedAt      int64  `json:"reserved_at"`
	PartySize       int    `json:"party_size"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Service validates and persists reservations.
type Service struct {
	reservations storage.ReservationStore
	users        storage.UserStore
	locations    *catalog.Locations
	now          func() time.Time
}

// NewService creates a reservation service.
func NewService(reservations storage.ReservationStore, users storage.UserStore, locations *catalog.Locations) *Service {
	return &Service{
		reservations: reservations,
		users:        users,
		locations:    locations,
		now:          time.Now,
	}
}

// Create books a table for userID. Missing contact fields are filled from
// the user's profile.
func (s *Service) Create(ctx context.Context, userID string, req Request) (*models.Reservation, error) {
	if req.PartySize < MinPartySize || req.PartySize > MaxPartySize {
		return nil, ErrInvalidPartySize
	}
	if _, ok := s.locations.ByID(req.LocationID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, req.LocationID)
	}
	if req.ReservedAt <= s.now().Unix() {
		return nil, ErrPastTime
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" {
		user, err := s.users.GetUserByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		if user != nil {
			name = fallback(name, user.DisplayName)
			email = fallback(email, user.Email)
			phone = fallback(phone, user.Phone)
		}
	}
	if name == "" {
		return nil, ErrMissingContact
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrMissingContact
	}

	r := &models.Reservation{
		UserID:          userID,
		LocationID:      req.LocationID,
		ReservedAt:      req.ReservedAt,
		PartySize:       req.PartySize,
		Name:            name,
		Email:           email,
		Phone:           phone,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		Status:          models.ReservationConfirmed,
		CreatedAt:       s.now().Unix(),
	}
	if err := s.reservations.CreateReservation(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	slog.Info("Reservation created",
		"reservation_id", r.ID,
		"user_id", userID,
		"location_id", r.LocationID,
		"party_size", r.PartySize,
	)
	return r, nil
}

// List returns the user's reservations, newest booking first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Reservation, error) {
	list, err := s.reservations.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

// Cancel marks the reservation cancelled. Cancelling twice is not an error.
func (s *Service) Cancel(ctx context.Context, userID, id string) (*models.Reservation, error) {
	r, err := s.reservations.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, ErrNotOwner
	}
	if r.Status == models.ReservationCancelled {
		return r, nil
	}
	if err := s.reservations.UpdateReservationStatus(ctx, id, models.ReservationCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	r.Status = models.ReservationCancelled

	slog.Info("Reservation cancelled", "reservation_id", id, "user_id", userID)
	return r, nil
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
