// Package metrics defines and registers all custom Prometheus metrics for the
// Briefly API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "briefly"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (bad credentials or disabled account)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BlogsCreatedTotal counts newly created blog posts.
var BlogsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blogs_created_total",
		Help:      "Total number of blog posts created.",
	},
)

// ViewsRecordedTotal counts deduplicated view increments applied to posts.
var ViewsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_recorded_total",
		Help:      "Total number of blog views recorded after deduplication.",
	},
)

// MarketFetchTotal counts upstream market-data fetch attempts.
// Labels:
//   - market: "crypto" or "stocks"
//   - result: "success" or "failure"
var MarketFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_fetch_total",
		Help:      "Total number of upstream market-data fetches, by market and result.",
	},
	[]string{"market", "result"},
)

// MarketCacheTotal counts cache decisions on market-data reads.
// Labels:
//   - market: "crypto" or "stocks"
//   - result: "hit" (fresh), "miss" (refreshed), "stale" (upstream failed,
//     old payload served), or "empty" (upstream failed, nothing cached)
var MarketCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_cache_total",
		Help:      "Total number of market cache reads, by market and outcome.",
	},
	[]string{"market", "result"},
)
