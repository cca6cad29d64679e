package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hostaly/rooms-api/internal/api/metrics"
	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
)

// Context keys set by Auth after successful verification.
const (
	CtxUsername = "username"
	CtxRole     = "role"
	CtxClaims   = "claims"
)

// Auth extracts the bearer token from the Authorization header, verifies it,
// and injects the resolved claims into the request context.
//
// A missing header short-circuits with 401; a token that fails verification
// (malformed, bad signature, expired, or revoked) short-circuits with 403.
// Downstream is invoked exactly once, only after verification.
func Auth(verifier ports.TokenVerifier, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			if revoker != nil && claims.TokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "token revoked")
				}
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxClaims, claims)

			return next(c)
		}
	}
}

// extractToken treats the whole header value as the token; a conventional
// "Bearer " prefix is tolerated and stripped.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// Claims returns the decoded claims set by Auth, if present.
func Claims(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(CtxClaims).(domain.Claims)
	return claims, ok
}
