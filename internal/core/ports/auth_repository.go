package ports

import (
	"context"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Create must enforce username uniqueness atomically (no check-then-insert
// race between concurrent registrations).
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
