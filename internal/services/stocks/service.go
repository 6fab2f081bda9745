// Package stocks aggregates market data, forecasts, and news into the
// StockView response shapes.
package stocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/stockview/internal/common"
	"github.com/bobmcallan/stockview/internal/forecast"
	"github.com/bobmcallan/stockview/internal/interfaces"
	"github.com/bobmcallan/stockview/internal/models"
)

// Sentinel errors mapped to HTTP status codes at the server layer.
var (
	// ErrNoData means the market-data provider returned no rows for a ticker.
	ErrNoData = errors.New("no data found for ticker")

	// ErrSearchNotConfigured means the search-provider credential is unset.
	ErrSearchNotConfigured = errors.New("search provider not configured")
)

// Fixed request windows and limits
const (
	historyWindowDays  = 30
	trainingWindowDays = 180
	forecastHorizon    = 5
	maxNewsResults     = 10
)

// Service implements StockService. search may be nil when no credential is
// configured — GetCompanyNews reports ErrSearchNotConfigured in that case.
type Service struct {
	market interfaces.MarketDataClient
	search interfaces.SearchClient
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
}

// NewService creates a new stock aggregation service.
func NewService(market interfaces.MarketDataClient, search interfaces.SearchClient, logger *common.Logger) *Service {
	return &Service{
		market: market,
		search: search,
		logger: logger,
		now:    time.Now,
	}
}

// companyName resolves the display name for a ticker, falling back to the
// ticker itself when the provider has no name or the lookup fails.
func (s *Service) companyName(ctx context.Context, ticker string) string {
	name, err := s.market.GetCompanyName(ctx, ticker)
	if err != nil || name == "" {
		return ticker
	}
	return name
}

// GetStockData returns the last 30 days of daily bars for a ticker.
func (s *Service) GetStockData(ctx context.Context, ticker string) (*models.StockDataResponse, error) {
	now := s.now()
	from := now.AddDate(0, 0, -historyWindowDays)

	bars, err := s.market.GetEOD(ctx, ticker, interfaces.WithDateRange(from, now))
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Failed to fetch stock data")
		return nil, err
	}

	if len(bars) == 0 {
		return nil, ErrNoData
	}

	return &models.StockDataResponse{
		Ticker:      ticker,
		CompanyName: s.companyName(ctx, ticker),
		Data:        bars,
		LastUpdated: now,
	}, nil
}

// PredictStockPrices fits a seasonal model on 180 days of daily closes and
// returns a 5-day-ahead forecast. Model fitting is synchronous and CPU-bound;
// no deadline is applied here.
func (s *Service) PredictStockPrices(ctx context.Context, ticker string) (*models.PredictionResponse, error) {
	now := s.now()
	from := now.AddDate(0, 0, -trainingWindowDays)

	bars, err := s.market.GetEOD(ctx, ticker, interfaces.WithDateRange(from, now))
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Failed to fetch training data")
		return nil, err
	}

	if len(bars) == 0 {
		return nil, ErrNoData
	}

	series := make([]forecast.Point, len(bars))
	for i, bar := range bars {
		series[i] = forecast.Point{Date: bar.Date.Time(), Value: bar.Close}
	}

	model := forecast.NewModel(forecast.Options{
		YearlySeasonality: true,
		WeeklySeasonality: true,
		DailySeasonality:  false,
		SeasonalityMode:   forecast.ModeMultiplicative,
	})

	if err := model.Fit(series); err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Model fit failed")
		return nil, fmt.Errorf("failed to fit forecast model: %w", err)
	}

	preds, err := model.Predict(forecastHorizon)
	if err != nil {
		return nil, fmt.Errorf("failed to generate forecast: %w", err)
	}

	points := make([]models.ForecastPoint, len(preds))
	for i, p := range preds {
		points[i] = models.ForecastPoint{
			Date:       models.Day(p.Date),
			Predicted:  p.Value,
			LowerBound: p.Lower,
			UpperBound: p.Upper,
		}
	}

	return &models.PredictionResponse{
		Ticker:      ticker,
		CompanyName: s.companyName(ctx, ticker),
		Predictions: points,
		ModelInfo: models.ModelInfo{
			TrainingPeriod:    fmt.Sprintf("%s to %s", from.Format("2006-01-02"), now.Format("2006-01-02")),
			PredictionHorizon: fmt.Sprintf("%d days", forecastHorizon),
		},
		LastUpdated: now,
	}, nil
}

// GetCompanyNews searches recent news about a company. The query is fixed as
// "<company> stock news" with summarization disabled.
func (s *Service) GetCompanyNews(ctx context.Context, company string) (*models.NewsResponse, error) {
	if s.search == nil {
		return nil, ErrSearchNotConfigured
	}

	query := fmt.Sprintf("%s stock news", company)

	articles, err := s.search.Search(ctx, query, maxNewsResults)
	if err != nil {
		s.logger.Error().Err(err).Str("company", company).Msg("News search failed")
		return nil, err
	}

	if articles == nil {
		articles = []models.NewsArticle{}
	}

	return &models.NewsResponse{
		Company:       company,
		Articles:      articles,
		TotalArticles: len(articles),
		SearchQuery:   query,
		LastUpdated:   s.now(),
	}, nil
}

// Ensure Service implements StockService
var _ interfaces.StockService = (*Service)(nil)
