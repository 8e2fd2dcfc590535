package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryUpdate holds the mutable category fields; nil leaves a field untouched.
type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
}

// CreateCategoryInput carries the fields accepted at category creation.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput holds the fields a client may change.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryService defines use-case operations for categories. Mutations are
// admin-only; the role check happens in the RBAC middleware, not here.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
