package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account and its profile.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's login address (unique).
	Email string `json:"email"`

	// DisplayName is the name shown in the app.
	DisplayName string `json:"display_name"`

	// PasswordHash is the bcrypt hash. Never serialized.
	PasswordHash string `json:"-"`

	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	// DietaryPreferences are free-form labels like "vegan".
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewUser creates a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProfileUpdate is a partial profile update; nil fields are left unchanged.
type ProfileUpdate struct {
	DisplayName        *string   `json:"display_name,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Address            *string   `json:"address,omitempty"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	DietaryPreferences *[]string `json:"dietary_preferences,omitempty"`
}

// Apply copies the non-nil fields onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.DietaryPreferences != nil {
		u.DietaryPreferences = *p.DietaryPreferences
	}
	u.UpdatedAt = time.Now().Unix()
}
