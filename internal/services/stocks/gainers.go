package stocks

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/stockview/internal/models"
)

// gainerCandidates is the fixed set of symbols examined by GetTopGainers.
var gainerCandidates = []string{
	"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX",
	"AMD", "INTC", "CRM", "ORCL", "ADBE", "PYPL", "UBER", "LYFT",
}

// maxGainers caps the number of entries returned.
const maxGainers = 10

// round2 rounds to 2 decimal places without binary float drift.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// GetTopGainers fetches a quote for each candidate symbol sequentially and
// ranks them by percent change. Symbols missing a current price or previous
// close are skipped silently; a failed lookup is logged and skipped, never
// aborting the batch.
func (s *Service) GetTopGainers(ctx context.Context) (*models.GainersResponse, error) {
	gainers := make([]models.GainerEntry, 0, len(gainerCandidates))

	for _, ticker := range gainerCandidates {
		quote, err := s.market.GetRealTimeQuote(ctx, ticker)
		if err != nil {
			s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Skipping symbol, quote fetch failed")
			continue
		}

		if quote.Close == 0 || quote.PreviousClose == 0 {
			continue
		}

		change := quote.Close - quote.PreviousClose
		changePct := change / quote.PreviousClose * 100

		gainers = append(gainers, models.GainerEntry{
			Ticker:        ticker,
			CompanyName:   s.companyName(ctx, ticker),
			CurrentPrice:  quote.Close,
			PreviousClose: quote.PreviousClose,
			ChangePercent: round2(changePct),
			ChangeAmount:  round2(change),
		})
	}

	sort.Slice(gainers, func(i, j int) bool {
		return gainers[i].ChangePercent > gainers[j].ChangePercent
	})

	if len(gainers) > maxGainers {
		gainers = gainers[:maxGainers]
	}

	return &models.GainersResponse{
		TopGainers:    gainers,
		TotalAnalyzed: len(gainerCandidates),
		LastUpdated:   s.now(),
	}, nil
}
