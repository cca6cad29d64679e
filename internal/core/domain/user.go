package domain

import (
	"errors"
	"time"
)

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenRevoked = errors.New("token revoked")

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleGuest || role == RoleAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Claims are the identity facts carried inside a token and attached to a
// request after verification.
type Claims struct {
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
