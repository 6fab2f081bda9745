// Package models defines data structures for StockView
package models

import (
	"fmt"
	"strings"
	"time"
)

// Day is a calendar date that serializes as YYYY-MM-DD.
type Day time.Time

// MarshalJSON renders the date as "2006-01-02".
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(d).Format("2006-01-02"))), nil
}

// UnmarshalJSON parses a "2006-01-02" date.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = Day(t)
	return nil
}

// Time returns the underlying time.Time.
func (d Day) Time() time.Time {
	return time.Time(d)
}

// NormalizeTicker uppercases and trims a ticker symbol. The result may be
// empty — callers reject empty tickers before any provider call.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// PriceBar represents a single trading day's price data
type PriceBar struct {
	Date   Day     `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// RealTimeQuote holds a live price snapshot from the market-data provider
type RealTimeQuote struct {
	Code          string    `json:"code"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`          // current/last price
	PreviousClose float64   `json:"previous_close"` // previous day's close
	Change        float64   `json:"change"`
	ChangePct     float64   `json:"change_p"`
	Volume        int64     `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
}

// GainerEntry is one ranked row in the top-gainers response.
// Change fields are rounded to 2 decimal places.
type GainerEntry struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	ChangePercent float64 `json:"change_percent"`
	ChangeAmount  float64 `json:"change_amount"`
}

// StockDataResponse is the /stock response envelope
type StockDataResponse struct {
	Ticker      string     `json:"ticker"`
	CompanyName string     `json:"company_name"`
	Data        []PriceBar `json:"data"`
	LastUpdated time.Time  `json:"last_updated"`
}

// GainersResponse is the /suggest response envelope
type GainersResponse struct {
	TopGainers    []GainerEntry `json:"top_gainers"`
	TotalAnalyzed int           `json:"total_analyzed"`
	LastUpdated   time.Time     `json:"last_updated"`
}
