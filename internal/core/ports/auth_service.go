package ports

import (
	"context"
	"time"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// SessionClaims is the identity carried by a session token and attached to
// the request context by the auth middleware.
type SessionClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	Issue(userID, email, role string) (string, error)
	// Verify returns domain.ErrInvalidToken for any token that is malformed,
	// forged, or expired; causes are deliberately not distinguished.
	Verify(token string) (*SessionClaims, error)
}

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult bundles the authenticated user and a freshly issued token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// Profile is the self-view returned by GET /auth/profile.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService implements registration, login, and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}
