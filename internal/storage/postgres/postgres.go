// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface using a pgx connection pool.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

var _ storage.Store = (*PostgresStore)(nil)

// PostgresStore implements storage.Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// New connects to dsn, verifies the connection and runs migrations.
func New(ctx context.Context, dsn string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    dietary_preferences JSONB NOT NULL DEFAULT '[]',
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS reservations (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    location_id TEXT NOT NULL,
    reserved_at BIGINT NOT NULL,
    party_size INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    special_requests TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    items JSONB NOT NULL,
    item_count INTEGER NOT NULL,
    total NUMERIC(12, 2) NOT NULL,
    placed_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_state (
    user_id TEXT NOT NULL,
    key TEXT NOT NULL,
    value BYTEA NOT NULL,
    updated_at BIGINT NOT NULL,
    PRIMARY KEY (user_id, key)
);

CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON reservations(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
`

const userColumns = `id, email, display_name, password_hash, phone, address, avatar_url,
	dietary_preferences, created_at, updated_at`

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	prefs, err := json.Marshal(nonNil(user.DietaryPreferences))
	if err != nil {
		return fmt.Errorf("failed to encode dietary preferences: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.Phone,
		user.Address, user.AvatarURL, prefs, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var prefs []byte
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.Phone,
		&user.Address, &user.AvatarURL, &prefs, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := json.Unmarshal(prefs, &user.DietaryPreferences); err != nil {
		return nil, fmt.Errorf("failed to decode dietary preferences: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, user *models.User) error {
	prefs, err := json.Marshal(nonNil(user.DietaryPreferences))
	if err != nil {
		return fmt.Errorf("failed to encode dietary preferences: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET display_name = $1, phone = $2, address = $3, avatar_url = $4,
		 dietary_preferences = $5, updated_at = $6 WHERE id = $7`,
		user.DisplayName, user.Phone, user.Address, user.AvatarURL, prefs, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID, storage.ErrNotFound)
	}
	return nil
}

const reservationColumns = `id, user_id, location_id, reserved_at, party_size, name, email,
	phone, special_requests, status, created_at`

func (s *PostgresStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO reservations (`+reservationColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.ID, r.UserID, r.LocationID, r.ReservedAt, r.PartySize, r.Name, r.Email,
		r.Phone, r.SpecialRequests, r.Status, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	r, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[models.Reservation])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reservation %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservation: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListReservationsByUser(ctx context.Context, userID string) ([]*models.Reservation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1
		 ORDER BY reserved_at DESC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations by user: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Reservation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) UpdateReservationStatus(ctx context.Context, id, status string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) CreateOrder(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO orders (id, user_id, items, item_count, total, placed_at) VALUES ($1,$2,$3,$4,$5::text::numeric,$6)`,
		order.ID, order.UserID, items, order.ItemCount, order.Total.String(), order.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, items, item_count, total::text, placed_at FROM orders
		 WHERE user_id = $1 ORDER BY placed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		var items []byte
		var total string
		if err := rows.Scan(&order.ID, &order.UserID, &items, &order.ItemCount, &total, &order.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order %s items: %w", order.ID, err)
		}
		if order.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("failed to decode order %s total: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

func (s *PostgresStore) GetState(ctx context.Context, userID, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM user_state WHERE user_id = $1 AND key = $2`, userID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) PutState(ctx context.Context, userID, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_state (user_id, key, value, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		userID, key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to put state %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) DeleteState(ctx context.Context, userID, key string) error {
	if _, err := s.pool.Exec(ctx,
		`DELETE FROM user_state WHERE user_id = $1 AND key = $2`, userID, key); err != nil {
		return fmt.Errorf("failed to delete state %s: %w", key, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
