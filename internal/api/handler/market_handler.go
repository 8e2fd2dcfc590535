package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawantalekar/briefly/internal/core/ports"
)

// MarketHandler serves the cached market ticker data. Neither endpoint ever
// fails outward: upstream trouble degrades to stale or empty payloads.
type MarketHandler struct {
	marketService ports.MarketService
}

func NewMarketHandler(marketService ports.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// Crypto returns the cached-or-fresh crypto tickers.
//
// @Summary      Crypto market data
// @Tags         market
// @Produce      json
// @Success      200  {object}  response
// @Router       /market/crypto [get]
func (h *MarketHandler) Crypto(c echo.Context) error {
	return c.JSON(http.StatusOK, ok(h.marketService.Crypto(c.Request().Context())))
}

// Stocks returns the cached-or-fresh stock tickers.
//
// @Summary      Stock market data
// @Tags         market
// @Produce      json
// @Success      200  {object}  response
// @Router       /market/stocks [get]
func (h *MarketHandler) Stocks(c echo.Context) error {
	return c.JSON(http.StatusOK, ok(h.marketService.Stocks(c.Request().Context())))
}
