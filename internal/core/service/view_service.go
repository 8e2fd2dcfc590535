package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/api/metrics"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

// ViewCountService applies view events: a Redis-backed dedup check followed
// by an increment of the post's views_count. A dedup outage degrades to
// counting the view rather than dropping it.
type ViewCountService struct {
	blogs  ports.BlogRepository
	dedup  ports.ViewDeduper
	logger zerolog.Logger
}

func NewViewCountService(blogs ports.BlogRepository, dedup ports.ViewDeduper, logger zerolog.Logger) *ViewCountService {
	return &ViewCountService{blogs: blogs, dedup: dedup, logger: logger}
}

func (s *ViewCountService) Process(ctx context.Context, event ports.ViewEvent) error {
	if event.Viewer != "" {
		seen, err := s.dedup.Seen(ctx, event.BlogID, event.Viewer)
		if err != nil {
			s.logger.Warn().Err(err).Str("blog_id", event.BlogID).Msg("view dedup unavailable")
		} else if seen {
			return nil
		}
	}

	if err := s.blogs.IncrementViews(ctx, event.BlogID); err != nil {
		return err
	}
	metrics.ViewsRecordedTotal.Inc()
	return nil
}
