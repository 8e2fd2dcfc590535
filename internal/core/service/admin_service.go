package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// AdminService implements the admin-panel use cases. It bypasses the
// per-resource ownership rules: callers only reach it through the ADMIN
// role middleware.
type AdminService struct {
	users    ports.AdminRepository
	blogs    ports.BlogRepository
	comments ports.CommentRepository
	likes    ports.LikeRepository
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.AdminRepository,
	blogs ports.BlogRepository,
	comments ports.CommentRepository,
	likes ports.LikeRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, blogs: blogs, comments: comments, likes: likes, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.AdminStats{
		TotalUsers:    users,
		TotalBlogs:    blogs,
		TotalComments: comments,
		TotalLikes:    likes,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.UpdateUserRole(ctx, id, role)
}

func (s *AdminService) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	return s.users.SetUserActive(ctx, id, active)
}

func (s *AdminService) ListBlogs(ctx context.Context) ([]*domain.Blog, error) {
	return s.blogs.List(ctx, ports.ListBlogsFilter{Limit: maxListLimit})
}

func (s *AdminService) DeleteBlog(ctx context.Context, id string) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("blog_id", id).Msg("blog deleted by admin")
	return nil
}

func (s *AdminService) SetBlogPublished(ctx context.Context, id string, published bool) (*domain.Blog, error) {
	update := ports.BlogUpdate{IsPublished: &published}
	return s.blogs.Update(ctx, id, update)
}
