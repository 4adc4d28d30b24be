package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/storage"
)

const userColumns = `id, email, display_name, password_hash, phone, address, avatar_url,
	dietary_preferences, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	prefs, err := json.Marshal(nonNil(user.DietaryPreferences))
	if err != nil {
		return fmt.Errorf("failed to encode dietary preferences: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.Phone,
		user.Address,
		user.AvatarURL,
		string(prefs),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// UpdateUser overwrites the profile fields of an existing user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	prefs, err := json.Marshal(nonNil(user.DietaryPreferences))
	if err != nil {
		return fmt.Errorf("failed to encode dietary preferences: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET display_name = ?, phone = ?, address = ?, avatar_url = ?,
		 dietary_preferences = ?, updated_at = ? WHERE id = ?`,
		user.DisplayName, user.Phone, user.Address, user.AvatarURL,
		string(prefs), user.UpdatedAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s: %w", user.ID, storage.ErrNotFound)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var prefs string
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Phone,
		&user.Address,
		&user.AvatarURL,
		&prefs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(prefs), &user.DietaryPreferences); err != nil {
		return nil, fmt.Errorf("failed to decode dietary preferences: %w", err)
	}
	return user, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
