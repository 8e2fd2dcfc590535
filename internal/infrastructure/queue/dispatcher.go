package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ViewDispatcher routes view events to a fixed set of workers using
// consistent hashing on the blog id, so increments for one post are applied
// in order. Record never blocks the request path: when a worker channel is
// full the event is dropped (a lost view beats a stalled response).
type ViewDispatcher struct {
	workers []chan ports.ViewEvent
	views   ports.ViewProcessor
	log     zerolog.Logger
}

// NewViewDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewViewDispatcher(numWorkers int, views ports.ViewProcessor, log zerolog.Logger) *ViewDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ViewDispatcher{
		workers: make([]chan ports.ViewEvent, numWorkers),
		views:   views,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ViewEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ViewDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues a view event for asynchronous counting.
func (d *ViewDispatcher) Record(event ports.ViewEvent) {
	select {
	case d.workers[d.shardIndex(event.BlogID)] <- event:
	default:
		d.log.Warn().Str("blog_id", event.BlogID).Msg("view queue full, view dropped")
	}
}

// shardIndex maps a blog id deterministically to a worker index.
func (d *ViewDispatcher) shardIndex(blogID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(blogID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ViewDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ViewEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.views.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("blog_id", event.BlogID).
					Int("worker_id", id).
					Msg("view count failed")
			}
		}
	}
}
