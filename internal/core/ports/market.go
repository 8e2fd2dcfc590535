package ports

import (
	"context"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// CryptoFeed fetches current crypto market data from an upstream provider.
type CryptoFeed interface {
	FetchCrypto(ctx context.Context) ([]domain.CryptoTicker, error)
}

// StockFeed fetches current stock quotes from an upstream provider.
type StockFeed interface {
	FetchStocks(ctx context.Context) ([]domain.StockTicker, error)
}

// MarketService serves cached-or-fresh market data. Neither method ever
// returns an error: upstream failures degrade to stale or empty payloads.
type MarketService interface {
	Crypto(ctx context.Context) []domain.CryptoTicker
	Stocks(ctx context.Context) []domain.StockTicker
}
