package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User models a registered account. PasswordHash never leaves the auth and
// persistence layers; the json tag keeps it out of API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
