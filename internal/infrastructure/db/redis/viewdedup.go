package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewDedupTTL = time.Hour

// ViewDeduper suppresses repeat view counts from the same viewer within a
// one-hour window, backed by Redis.
// Key format: view:<blog_id>:<viewer>
type ViewDeduper struct {
	client *redis.Client
}

// NewViewDeduper creates a ViewDeduper wrapping the given Redis client.
func NewViewDeduper(client *redis.Client) *ViewDeduper {
	return &ViewDeduper{client: client}
}

// Seen reports whether this viewer already counted a view on this blog in the
// current window, marking the pair when it had not. SET NX makes check and
// mark a single atomic operation.
func (d *ViewDeduper) Seen(ctx context.Context, blogID, viewer string) (bool, error) {
	set, err := d.client.SetNX(ctx, d.key(blogID, viewer), "1", viewDedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup: %w", err)
	}
	return !set, nil
}

func (d *ViewDeduper) key(blogID, viewer string) string {
	return fmt.Sprintf("view:%s:%s", blogID, viewer)
}
