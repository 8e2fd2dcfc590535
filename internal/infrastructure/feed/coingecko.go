// Package feed implements the upstream market-data clients. Both providers
// are rate limited; callers are expected to sit behind the market cache.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// upstreamTimeout bounds every upstream call; neither provider imposes one.
const upstreamTimeout = 10 * time.Second

// CoinGeckoClient fetches the top coins by market cap from the public
// CoinGecko markets endpoint. No API key required.
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: upstreamTimeout},
	}
}

// FetchCrypto returns the top-10 coins by market cap, upstream-shaped.
func (c *CoinGeckoClient) FetchCrypto(ctx context.Context) ([]domain.CryptoTicker, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", "10")
	params.Set("page", "1")
	params.Set("sparkline", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko fetch: unexpected status %d", resp.StatusCode)
	}

	var tickers []domain.CryptoTicker
	if err := json.NewDecoder(resp.Body).Decode(&tickers); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	return tickers, nil
}
