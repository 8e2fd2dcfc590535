package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

// stockSymbols is the fixed watchlist served by the stocks endpoint.
var stockSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX", "AMD", "INTC"}

var stockNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"GOOGL": "Alphabet Inc.",
	"MSFT":  "Microsoft Corp.",
	"AMZN":  "Amazon.com Inc.",
	"TSLA":  "Tesla Inc.",
	"META":  "Meta Platforms",
	"NVDA":  "NVIDIA Corp.",
	"NFLX":  "Netflix Inc.",
	"AMD":   "AMD Inc.",
	"INTC":  "Intel Corp.",
}

// ErrNoAPIKey is returned when no Finnhub key is configured; the market
// cache absorbs it like any other upstream failure.
var ErrNoAPIKey = errors.New("finnhub api key not configured")

// FinnhubClient fetches per-symbol quotes from the Finnhub quote endpoint,
// fanned out over the fixed watchlist.
type FinnhubClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewFinnhubClient(baseURL, apiKey string) *FinnhubClient {
	return &FinnhubClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: upstreamTimeout},
	}
}

// finnhubQuote is the upstream quote shape: c=current, d=change, dp=percent.
type finnhubQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
}

// FetchStocks quotes every watchlist symbol concurrently and drops symbols
// with no usable price (upstream reports 0 for unknown or unlicensed ones).
func (c *FinnhubClient) FetchStocks(ctx context.Context) ([]domain.StockTicker, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	results := make([]domain.StockTicker, len(stockSymbols))
	errs := make([]error, len(stockSymbols))

	var wg sync.WaitGroup
	for i, symbol := range stockSymbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			quote, err := c.quote(ctx, symbol)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = domain.StockTicker{
				Symbol:        symbol,
				Name:          stockNames[symbol],
				Price:         quote.Current,
				Change:        quote.Change,
				ChangePercent: quote.ChangePercent,
			}
		}(i, symbol)
	}
	wg.Wait()

	valid := make([]domain.StockTicker, 0, len(stockSymbols))
	for i, t := range results {
		if errs[i] == nil && t.Price > 0 {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		if err := errors.Join(errs...); err != nil {
			return nil, fmt.Errorf("finnhub fetch: %w", err)
		}
		return nil, errors.New("finnhub fetch: no quotes with a usable price")
	}
	return valid, nil
}

func (c *FinnhubClient) quote(ctx context.Context, symbol string) (*finnhubQuote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote %s: unexpected status %d", symbol, resp.StatusCode)
	}

	var quote finnhubQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	return &quote, nil
}
