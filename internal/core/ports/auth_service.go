package ports

import (
	"context"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates an account with role "regular". A taken username
	// yields domain.ErrUserExists.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues a bearer token. Unknown
	// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// PasswordHasher hashes and verifies credentials. Implementations never log
// or return the plaintext.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Verify reports whether password matches hash. A malformed hash is a
	// mismatch, never an error that escapes this boundary.
	Verify(ctx context.Context, password, hash string) bool
}

// TokenService issues and verifies expiring signed identity tokens.
type TokenService interface {
	Issue(subject string) (string, error)
	// Verify returns the token's subject, or domain.ErrInvalidToken for
	// malformed, mis-signed or expired tokens.
	Verify(token string) (string, error)
}

// PrincipalResolver maps a presented token to a live authenticated identity.
type PrincipalResolver interface {
	// Resolve verifies the token and looks its subject up in the user
	// store. A valid signature over a deleted account still resolves to
	// domain.ErrInvalidToken.
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}
