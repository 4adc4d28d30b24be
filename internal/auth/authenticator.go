// Package auth handles account credentials and session tokens.
package auth

import (
	"context"

	"github.com/mmynk/tastyhub/internal/models"
)

// Authenticator verifies account credentials.
// Implementations other than passwords (OAuth, passkeys) plug in here
// without the service layer noticing.
type Authenticator interface {
	// Register creates a new account. The credential format depends on the
	// implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user owning email when credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error
}
