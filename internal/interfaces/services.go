package interfaces

import (
	"context"

	"github.com/bobmcallan/stockview/internal/models"
)

// StockService aggregates provider data into the HTTP response shapes.
// Inputs are assumed validated and normalized by the caller.
type StockService interface {
	// GetStockData returns the last 30 days of daily bars for a ticker
	GetStockData(ctx context.Context, ticker string) (*models.StockDataResponse, error)

	// PredictStockPrices fits a seasonal model on 180 days of closes and
	// returns a 5-day forecast
	PredictStockPrices(ctx context.Context, ticker string) (*models.PredictionResponse, error)

	// GetCompanyNews searches recent news articles for a company
	GetCompanyNews(ctx context.Context, company string) (*models.NewsResponse, error)

	// GetTopGainers ranks a fixed candidate list by percent change
	GetTopGainers(ctx context.Context) (*models.GainersResponse, error)
}
