package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/api/metrics"
	"github.com/pawantalekar/briefly/internal/core/domain"
	"github.com/pawantalekar/briefly/internal/core/ports"
)

const defaultMarketTTL = 60 * time.Second

// marketSlot is a single-slot, time-boxed cache for one market's payload.
// The mutex is held across the refresh, so concurrent misses wait for the one
// in-flight upstream call instead of stampeding the provider.
type marketSlot[T any] struct {
	mu        sync.Mutex
	payload   []T
	fetchedAt time.Time
}

// get returns the cached payload when fresh, otherwise refreshes via fetch.
// A failed refresh falls back to the stale payload, or an empty slice when
// the slot has never been filled. It never returns an error.
func (s *marketSlot[T]) get(ctx context.Context, market string, ttl time.Duration, now func() time.Time, fetch func(context.Context) ([]T, error), log zerolog.Logger) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.payload) > 0 && now().Sub(s.fetchedAt) < ttl {
		metrics.MarketCacheTotal.WithLabelValues(market, "hit").Inc()
		return s.payload
	}

	fresh, err := fetch(ctx)
	if err != nil || len(fresh) == 0 {
		if err != nil {
			metrics.MarketFetchTotal.WithLabelValues(market, "failure").Inc()
			log.Error().Err(err).Str("market", market).Msg("market data fetch failed")
		}
		if len(s.payload) > 0 {
			metrics.MarketCacheTotal.WithLabelValues(market, "stale").Inc()
			return s.payload
		}
		metrics.MarketCacheTotal.WithLabelValues(market, "empty").Inc()
		return []T{}
	}

	metrics.MarketFetchTotal.WithLabelValues(market, "success").Inc()
	metrics.MarketCacheTotal.WithLabelValues(market, "miss").Inc()
	s.payload = fresh
	s.fetchedAt = now()
	return s.payload
}

// MarketDataService serves cached-or-fresh market data with one independent
// slot per tracked market. Upstream failures are absorbed, never surfaced.
type MarketDataService struct {
	crypto ports.CryptoFeed
	stocks ports.StockFeed
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger

	cryptoSlot marketSlot[domain.CryptoTicker]
	stockSlot  marketSlot[domain.StockTicker]
}

func NewMarketDataService(crypto ports.CryptoFeed, stocks ports.StockFeed, ttl time.Duration, logger zerolog.Logger) *MarketDataService {
	if ttl <= 0 {
		ttl = defaultMarketTTL
	}
	return &MarketDataService{
		crypto: crypto,
		stocks: stocks,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

func (s *MarketDataService) Crypto(ctx context.Context) []domain.CryptoTicker {
	return s.cryptoSlot.get(ctx, "crypto", s.ttl, s.now, s.crypto.FetchCrypto, s.logger)
}

func (s *MarketDataService) Stocks(ctx context.Context) []domain.StockTicker {
	return s.stockSlot.get(ctx, "stocks", s.ttl, s.now, s.stocks.FetchStocks, s.logger)
}
