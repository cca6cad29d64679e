package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	repo    ports.AuthRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
	revoker ports.TokenRevoker
	audit   ports.AuditTrail
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenService, revoker ports.TokenRevoker, audit ports.AuditTrail, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		revoker: revoker,
		audit:   audit,
		logger:  logger,
	}
}

// Register hashes the password and inserts the user. Username uniqueness is
// owned by the repository's atomic insert. No token is issued on registration.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("user registered")
	s.record(ports.AuditRegister, username, role)
	return created, nil
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(ports.AuditLoginFailed, username, "")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(ports.AuditLoginFailed, username, "")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	s.record(ports.AuditLoginOK, username, "")
	return token, nil
}

// Logout places the presented token on the denylist until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims domain.Claims) error {
	if claims.TokenID == "" {
		return domain.ErrTokenMalformed
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}
	s.record(ports.AuditLogout, claims.Username, "")
	return nil
}

func (s *AuthService) record(action, actor, subject string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEvent{
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
