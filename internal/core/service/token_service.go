package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// sessionTokenClaims is the JWT payload: user identity plus the registered
// iat/exp pair. Field names match what the frontend decodes.
type sessionTokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens with a server-held HS256
// secret. Stateless; rotating the secret invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a token for the given identity with iat=now and exp=now+TTL.
func (s *TokenService) Issue(userID, email, role string) (string, error) {
	now := s.now().UTC()
	claims := sessionTokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Every failure mode collapses to
// domain.ErrInvalidToken so callers cannot tell expired from forged.
func (s *TokenService) Verify(token string) (*ports.SessionClaims, error) {
	claims := &sessionTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &ports.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
