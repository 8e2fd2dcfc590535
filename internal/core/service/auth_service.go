package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawantalekar/briefly/internal/api/metrics"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// bcryptCost matches the cost the original user base was hashed with.
const bcryptCost = 10

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a USER account and logs it straight in.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login verifies credentials and issues a fresh session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: token}, nil
}

// GetProfile returns the self-view of the authenticated user.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}, nil
}
