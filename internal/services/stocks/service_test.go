package stocks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stockview/internal/common"
	"github.com/bobmcallan/stockview/internal/interfaces"
	"github.com/bobmcallan/stockview/internal/models"
)

// mockMarketClient implements MarketDataClient for testing
type mockMarketClient struct {
	bars     []models.PriceBar
	barsErr  error
	quotes   map[string]*models.RealTimeQuote
	quoteErr map[string]error
	names    map[string]string
	namesErr error
}

func newMockMarketClient() *mockMarketClient {
	return &mockMarketClient{
		quotes:   make(map[string]*models.RealTimeQuote),
		quoteErr: make(map[string]error),
		names:    make(map[string]string),
	}
}

func (m *mockMarketClient) GetEOD(ctx context.Context, ticker string, opts ...interfaces.EODOption) ([]models.PriceBar, error) {
	if m.barsErr != nil {
		return nil, m.barsErr
	}
	return m.bars, nil
}

func (m *mockMarketClient) GetRealTimeQuote(ctx context.Context, ticker string) (*models.RealTimeQuote, error) {
	if err, ok := m.quoteErr[ticker]; ok {
		return nil, err
	}
	if q, ok := m.quotes[ticker]; ok {
		return q, nil
	}
	return nil, fmt.Errorf("no quote for %s", ticker)
}

func (m *mockMarketClient) GetCompanyName(ctx context.Context, ticker string) (string, error) {
	if m.namesErr != nil {
		return "", m.namesErr
	}
	return m.names[ticker], nil
}

// mockSearchClient implements SearchClient for testing
type mockSearchClient struct {
	articles  []models.NewsArticle
	err       error
	lastQuery string
	lastMax   int
}

func (m *mockSearchClient) Search(ctx context.Context, query string, maxResults int) ([]models.NewsArticle, error) {
	m.lastQuery = query
	m.lastMax = maxResults
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

// sampleBars produces n ascending daily bars ending yesterday.
func sampleBars(n int) []models.PriceBar {
	start := time.Now().AddDate(0, 0, -n)
	bars := make([]models.PriceBar, n)
	for i := 0; i < n; i++ {
		price := 100 + float64(i)
		bars[i] = models.PriceBar{
			Date:   models.Day(start.AddDate(0, 0, i)),
			Open:   price,
			High:   price + 2,
			Low:    price - 1,
			Close:  price + 1,
			Volume: int64(1000 + i),
		}
	}
	return bars
}

func TestGetStockData_ReturnsBars(t *testing.T) {
	market := newMockMarketClient()
	market.bars = sampleBars(30)
	market.names["AAPL"] = "Apple Inc"

	svc := NewService(market, nil, common.NewSilentLogger())

	resp, err := svc.GetStockData(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", resp.Ticker)
	assert.Equal(t, "Apple Inc", resp.CompanyName)
	assert.Len(t, resp.Data, 30)
	assert.False(t, resp.LastUpdated.IsZero())

	// Bars stay chronological with non-negative volume
	for i := 1; i < len(resp.Data); i++ {
		assert.True(t, resp.Data[i-1].Date.Time().Before(resp.Data[i].Date.Time()))
	}
	for _, bar := range resp.Data {
		assert.GreaterOrEqual(t, bar.Volume, int64(0))
	}
}

func TestGetStockData_NoDataIsNotFound(t *testing.T) {
	market := newMockMarketClient()
	market.bars = nil

	svc := NewService(market, nil, common.NewSilentLogger())

	_, err := svc.GetStockData(context.Background(), "EMPTY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestGetStockData_CompanyNameFallsBackToTicker(t *testing.T) {
	market := newMockMarketClient()
	market.bars = sampleBars(5)
	market.namesErr = fmt.Errorf("fundamentals unavailable")

	svc := NewService(market, nil, common.NewSilentLogger())

	resp, err := svc.GetStockData(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", resp.CompanyName)
}

func TestGetStockData_ProviderErrorPropagates(t *testing.T) {
	market := newMockMarketClient()
	market.barsErr = fmt.Errorf("connection refused")

	svc := NewService(market, nil, common.NewSilentLogger())

	_, err := svc.GetStockData(context.Background(), "AAPL")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoData))
}

func TestPredictStockPrices_ReturnsFivePoints(t *testing.T) {
	market := newMockMarketClient()
	market.bars = sampleBars(120)
	market.names["AAPL"] = "Apple Inc"

	svc := NewService(market, nil, common.NewSilentLogger())

	resp, err := svc.PredictStockPrices(context.Background(), "AAPL")
	require.NoError(t, err)

	require.Len(t, resp.Predictions, 5)
	for i, p := range resp.Predictions {
		assert.LessOrEqual(t, p.LowerBound, p.Predicted, "point %d", i)
		assert.LessOrEqual(t, p.Predicted, p.UpperBound, "point %d", i)
	}

	// Forecast dates continue past the last training bar, one per day
	last := market.bars[len(market.bars)-1].Date.Time()
	for i, p := range resp.Predictions {
		want := last.AddDate(0, 0, i+1)
		assert.Equal(t, want.Format("2006-01-02"), p.Date.Time().Format("2006-01-02"))
	}

	assert.Equal(t, "5 days", resp.ModelInfo.PredictionHorizon)
	assert.Contains(t, resp.ModelInfo.TrainingPeriod, " to ")
}

func TestPredictStockPrices_NoDataIsNotFound(t *testing.T) {
	market := newMockMarketClient()

	svc := NewService(market, nil, common.NewSilentLogger())

	_, err := svc.PredictStockPrices(context.Background(), "EMPTY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestPredictStockPrices_TooFewBarsFails(t *testing.T) {
	market := newMockMarketClient()
	market.bars = sampleBars(10)

	svc := NewService(market, nil, common.NewSilentLogger())

	_, err := svc.PredictStockPrices(context.Background(), "THIN")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoData))
}

func TestGetCompanyNews_NotConfigured(t *testing.T) {
	svc := NewService(newMockMarketClient(), nil, common.NewSilentLogger())

	_, err := svc.GetCompanyNews(context.Background(), "Apple")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSearchNotConfigured))
}

func TestGetCompanyNews_BuildsFixedQuery(t *testing.T) {
	search := &mockSearchClient{
		articles: []models.NewsArticle{
			{Title: "Apple hits new high", URL: "https://example.com/a"},
		},
	}
	svc := NewService(newMockMarketClient(), search, common.NewSilentLogger())

	resp, err := svc.GetCompanyNews(context.Background(), "Apple")
	require.NoError(t, err)

	assert.Equal(t, "Apple stock news", search.lastQuery)
	assert.Equal(t, 10, search.lastMax)
	assert.Equal(t, "Apple", resp.Company)
	assert.Equal(t, "Apple stock news", resp.SearchQuery)
	assert.Equal(t, 1, resp.TotalArticles)
	require.Len(t, resp.Articles, 1)
}

func TestGetCompanyNews_EmptyResultsIsNotAnError(t *testing.T) {
	search := &mockSearchClient{}
	svc := NewService(newMockMarketClient(), search, common.NewSilentLogger())

	resp, err := svc.GetCompanyNews(context.Background(), "Obscure Co")
	require.NoError(t, err)
	assert.NotNil(t, resp.Articles)
	assert.Equal(t, 0, resp.TotalArticles)
}

func TestGetCompanyNews_ProviderErrorPropagates(t *testing.T) {
	search := &mockSearchClient{err: fmt.Errorf("upstream exploded")}
	svc := NewService(newMockMarketClient(), search, common.NewSilentLogger())

	_, err := svc.GetCompanyNews(context.Background(), "Apple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream exploded")
}
