// Package interfaces defines service contracts for StockView
package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/stockview/internal/models"
)

// MarketDataClient provides access to the market-data provider
type MarketDataClient interface {
	// GetEOD retrieves end-of-day price bars, oldest first
	GetEOD(ctx context.Context, ticker string, opts ...EODOption) ([]models.PriceBar, error)

	// GetRealTimeQuote retrieves the latest price snapshot
	GetRealTimeQuote(ctx context.Context, ticker string) (*models.RealTimeQuote, error)

	// GetCompanyName retrieves the company display name for a ticker
	GetCompanyName(ctx context.Context, ticker string) (string, error)
}

// SearchClient provides access to the web-search provider
type SearchClient interface {
	// Search runs a query and maps results to news articles
	Search(ctx context.Context, query string, maxResults int) ([]models.NewsArticle, error)
}

// EODOption configures EOD data requests
type EODOption func(*EODParams)

// EODParams holds EOD query parameters
type EODParams struct {
	From   time.Time
	To     time.Time
	Period string // d=daily, w=weekly, m=monthly
}

// WithDateRange sets the date range for EOD query
func WithDateRange(from, to time.Time) EODOption {
	return func(p *EODParams) {
		p.From = from
		p.To = to
	}
}

// WithPeriod sets the period for EOD query
func WithPeriod(period string) EODOption {
	return func(p *EODParams) {
		p.Period = period
	}
}
