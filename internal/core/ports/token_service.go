package ports

import (
	"context"
	"time"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}

type TokenIssuer interface {
	Issue(username, role string) (string, error)
}

// TokenVerifier checks a raw token string and returns its claims.
// Failures are typed: domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid,
// domain.ErrTokenExpired.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// TokenRevoker is the server-side denylist that makes stateless tokens
// revocable. Revoke marks a token id until its natural expiry; IsRevoked is
// consulted by the auth middleware after signature verification.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
