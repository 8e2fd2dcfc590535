package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// AdminRepository covers the user-management operations only the admin panel
// performs; counts for the dashboard come from the per-resource repositories.
type AdminRepository interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalBlogs    int64 `json:"totalBlogs"`
	TotalComments int64 `json:"totalComments"`
	TotalLikes    int64 `json:"totalLikes"`
}

// AdminService defines the admin-panel use cases. Callers reach these only
// through the ADMIN-role middleware.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
	ListBlogs(ctx context.Context) ([]*domain.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	SetBlogPublished(ctx context.Context, id string, published bool) (*domain.Blog, error)
}
