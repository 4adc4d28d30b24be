package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

const reservationColumns = `id, user_id, location_id, reserved_at, party_size, name, email,
	phone, special_requests, status, created_at`

// CreateReservation persists a new reservation to the database.
func (s *SQLiteStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	// Generate ID if not set
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reservations (`+reservationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.LocationID, r.ReservedAt, r.PartySize, r.Name, r.Email,
		nullable(r.Phone), nullable(r.SpecialRequests), r.Status, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

// GetReservation retrieves a reservation by ID.
func (s *SQLiteStore) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	r, err := scanReservation(s.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reservation %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return r, nil
}

// ListReservationsByUser retrieves all reservations for a user.
func (s *SQLiteStore) ListReservationsByUser(ctx context.Context, userID string) ([]*models.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE user_id = ?
		 ORDER BY reserved_at DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations by user: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}

// UpdateReservationStatus sets the status of a reservation.
func (s *SQLiteStore) UpdateReservationStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE reservations SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("reservation %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(row scanner) (*models.Reservation, error) {
	r := &models.Reservation{}
	var phone, requests sql.NullString
	if err := row.Scan(&r.ID, &r.UserID, &r.LocationID, &r.ReservedAt, &r.PartySize,
		&r.Name, &r.Email, &phone, &requests, &r.Status, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Phone = phone.String
	r.SpecialRequests = requests.String
	return r, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
