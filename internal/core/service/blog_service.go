package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/api/metrics"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
	searchLimit      = 20
)

// BlogService implements the blog use cases. Update and Delete enforce
// ownership: the requester must be the stored author.
type BlogService struct {
	repo   ports.BlogRepository
	views  ports.ViewRecorder
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, views ports.ViewRecorder, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, views: views, logger: logger}
}

func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput, authorID string) (*domain.Blog, error) {
	now := time.Now().UTC()

	position := input.Position
	if position == "" {
		position = domain.PositionStandard
	}

	blog := &domain.Blog{
		Title:       input.Title,
		Content:     input.Content,
		Slug:        domain.Slugify(input.Title),
		Excerpt:     input.Excerpt,
		CoverImage:  input.CoverImage,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		IsPublished: input.IsPublished,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsPublished {
		blog.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, blog)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create blog")
		return nil, err
	}

	metrics.BlogsCreatedTotal.Inc()
	s.logger.Info().Str("blog_id", created.ID).Str("author_id", authorID).Msg("blog created")
	return created, nil
}

// GetByID fetches a post and records the read for view counting. The view is
// enqueued, not counted inline, so a slow counter never delays the response.
func (s *BlogService) GetByID(ctx context.Context, id, viewer string) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.views.Record(ports.ViewEvent{BlogID: blog.ID, Viewer: viewer})
	return blog, nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug, viewer string) (*domain.Blog, error) {
	blog, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.views.Record(ports.ViewEvent{BlogID: blog.ID, Viewer: viewer})
	return blog, nil
}

func (s *BlogService) List(ctx context.Context, input ports.ListBlogsInput) ([]*domain.Blog, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, ports.ListBlogsFilter{
		CategoryID:    input.CategoryID,
		PublishedOnly: true,
		Limit:         limit,
		Offset:        input.Offset,
	})
}

func (s *BlogService) Search(ctx context.Context, query string) ([]*domain.Blog, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query), searchLimit)
}

// ListByAuthor returns every post of an author, drafts included. Used only
// for the author's own dashboard.
func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Blog, error) {
	return s.repo.List(ctx, ports.ListBlogsFilter{AuthorID: authorID, Limit: maxListLimit})
}

func (s *BlogService) Update(ctx context.Context, id string, input ports.UpdateBlogInput, userID string) (*domain.Blog, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	update := ports.BlogUpdate{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		CoverImage:  input.CoverImage,
		CategoryID:  input.CategoryID,
		IsPublished: input.IsPublished,
		Position:    input.Position,
	}

	if input.Title != nil {
		slug := domain.Slugify(*input.Title)
		update.Slug = &slug
	}

	// First transition to published stamps published_at; re-publishing later
	// keeps the original timestamp.
	if input.IsPublished != nil && *input.IsPublished && !existing.IsPublished {
		now := time.Now().UTC()
		update.PublishedAt = &now
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error().Err(err).Str("blog_id", id).Msg("failed to update blog")
		return nil, err
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id, userID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("blog_id", id).Str("user_id", userID).Msg("blog deleted")
	return nil
}
