package ports

import (
	"context"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, claims domain.Claims) error
}

// PasswordHasher produces and checks one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on mismatch; it never fails for a normal mismatch.
	Verify(plaintext, hash string) bool
}
