package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// CategoryService implements category use cases. Role enforcement for
// mutations lives in the RBAC middleware.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:        input.Name,
		Slug:        domain.Slugify(input.Name),
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create category")
		return nil, err
	}
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	update := ports.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
	}
	if input.Name != nil {
		slug := domain.Slugify(*input.Name)
		update.Slug = &slug
	}
	return s.repo.Update(ctx, id, update)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
