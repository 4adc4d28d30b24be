package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tastyhub/internal/models"
)

type memoryUsers struct {
	byEmail map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, u *models.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) UpdateUser(_ context.Context, u *models.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers()).WithCost(bcrypt.MinCost)

	user, err := a.Register(ctx, " Pat@Example.com ", "Pat", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "pat@example.com" {
		t.Errorf("Email = %q, want normalized", user.Email)
	}
	if user.PasswordHash == "secret1" {
		t.Error("password stored in plain text")
	}

	tests := []struct {
		name     string
		email    string
		display  string
		password string
		want     error
	}{
		{"duplicate email", "pat@example.com", "Pat", "secret1", ErrEmailExists},
		{"short password", "sam@example.com", "Sam", "abc", ErrWeakPassword},
		{"bad email", "not-an-email", "Sam", "secret1", ErrInvalidEmail},
		{"missing name", "sam@example.com", "  ", "secret1", ErrMissingName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Register(ctx, tt.email, tt.display, tt.password); !errors.Is(err, tt.want) {
				t.Errorf("Register err = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("sign in", func(t *testing.T) {
		got, err := a.Authenticate(ctx, "PAT@example.com", "secret1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("ID = %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := a.Authenticate(ctx, "pat@example.com", "nope-nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := a.Authenticate(ctx, "ghost@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("pat@example.com", "Pat", "")

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("claims = %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		short := NewJWTManager("test-secret", -time.Minute)
		stale, err := short.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := short.Validate(stale); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("revoked", func(t *testing.T) {
		m.Revoke(claims)
		if _, err := m.Validate(token); !errors.Is(err, ErrRevokedToken) {
			t.Errorf("err = %v, want ErrRevokedToken", err)
		}

		fresh, err := m.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(fresh); err != nil {
			t.Errorf("fresh token rejected: %v", err)
		}
	})
}
