package domain

// CryptoTicker mirrors the upstream CoinGecko markets payload for the fields
// the frontend ticker consumes.
type CryptoTicker struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image,omitempty"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}

// StockTicker is the normalised per-symbol quote assembled from Finnhub.
type StockTicker struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}
