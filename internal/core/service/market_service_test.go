package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawantalekar/briefly/internal/core/domain"
)

type fakeCryptoFeed struct {
	calls   int
	payload []domain.CryptoTicker
	err     error
}

func (f *fakeCryptoFeed) FetchCrypto(context.Context) ([]domain.CryptoTicker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type fakeStockFeed struct {
	calls   int
	payload []domain.StockTicker
	err     error
}

func (f *fakeStockFeed) FetchStocks(context.Context) ([]domain.StockTicker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newMarketFixture(crypto *fakeCryptoFeed, stocks *fakeStockFeed) (*MarketDataService, *time.Time) {
	svc := NewMarketDataService(crypto, stocks, time.Minute, zerolog.Nop())
	clock := time.Now()
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func TestMarketDataService_FetchesOnColdCache(t *testing.T) {
	crypto := &fakeCryptoFeed{payload: []domain.CryptoTicker{{ID: "bitcoin"}}}
	svc, _ := newMarketFixture(crypto, &fakeStockFeed{})

	tickers := svc.Crypto(context.Background())
	if len(tickers) != 1 || tickers[0].ID != "bitcoin" {
		t.Fatalf("unexpected payload: %+v", tickers)
	}
	if crypto.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", crypto.calls)
	}
}

func TestMarketDataService_ServesFromCacheInsideTTL(t *testing.T) {
	crypto := &fakeCryptoFeed{payload: []domain.CryptoTicker{{ID: "bitcoin"}}}
	svc, clock := newMarketFixture(crypto, &fakeStockFeed{})

	svc.Crypto(context.Background())
	*clock = clock.Add(30 * time.Second)
	svc.Crypto(context.Background())
	svc.Crypto(context.Background())

	if crypto.calls != 1 {
		t.Fatalf("reads inside the TTL must not hit upstream, got %d calls", crypto.calls)
	}
}

func TestMarketDataService_RefreshesAfterTTL(t *testing.T) {
	crypto := &fakeCryptoFeed{payload: []domain.CryptoTicker{{ID: "bitcoin"}}}
	svc, clock := newMarketFixture(crypto, &fakeStockFeed{})

	svc.Crypto(context.Background())
	*clock = clock.Add(2 * time.Minute)

	crypto.payload = []domain.CryptoTicker{{ID: "ethereum"}}
	tickers := svc.Crypto(context.Background())
	if crypto.calls != 2 {
		t.Fatalf("expected refresh after TTL, got %d calls", crypto.calls)
	}
	if tickers[0].ID != "ethereum" {
		t.Fatalf("expected fresh payload, got %+v", tickers)
	}
}

func TestMarketDataService_StaleFallbackOnUpstreamFailure(t *testing.T) {
	crypto := &fakeCryptoFeed{payload: []domain.CryptoTicker{{ID: "bitcoin"}}}
	svc, clock := newMarketFixture(crypto, &fakeStockFeed{})

	svc.Crypto(context.Background())
	*clock = clock.Add(2 * time.Minute)

	crypto.err = errors.New("upstream down")
	tickers := svc.Crypto(context.Background())
	if len(tickers) != 1 || tickers[0].ID != "bitcoin" {
		t.Fatalf("expected stale payload, got %+v", tickers)
	}
}

func TestMarketDataService_EmptyOnColdFailure(t *testing.T) {
	crypto := &fakeCryptoFeed{err: errors.New("upstream down")}
	svc, _ := newMarketFixture(crypto, &fakeStockFeed{})

	tickers := svc.Crypto(context.Background())
	if tickers == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(tickers) != 0 {
		t.Fatalf("expected empty payload, got %+v", tickers)
	}
}

func TestMarketDataService_SlotsAreIndependent(t *testing.T) {
	crypto := &fakeCryptoFeed{err: errors.New("upstream down")}
	stocks := &fakeStockFeed{payload: []domain.StockTicker{{Symbol: "AAPL"}}}
	svc, _ := newMarketFixture(crypto, stocks)

	if got := svc.Crypto(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty crypto payload, got %+v", got)
	}
	quotes := svc.Stocks(context.Background())
	if len(quotes) != 1 || quotes[0].Symbol != "AAPL" {
		t.Fatalf("a crypto outage must not affect stocks, got %+v", quotes)
	}
}

func TestMarketDataService_ConcurrentMissesSingleFetch(t *testing.T) {
	crypto := &fakeCryptoFeed{payload: []domain.CryptoTicker{{ID: "bitcoin"}}}
	svc, _ := newMarketFixture(crypto, &fakeStockFeed{})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			svc.Crypto(context.Background())
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if crypto.calls != 1 {
		t.Fatalf("concurrent misses must collapse to one upstream call, got %d", crypto.calls)
	}
}
