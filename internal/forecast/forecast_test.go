package forecast

import (
	"math"
	"testing"
	"time"
)

// dailySeries builds n days of observations ending today from a value function.
func dailySeries(n int, value func(i int) float64) []Point {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{Date: start.AddDate(0, 0, i), Value: value(i)}
	}
	return points
}

func defaultOptions() Options {
	return Options{
		YearlySeasonality: true,
		WeeklySeasonality: true,
		DailySeasonality:  false,
		SeasonalityMode:   ModeMultiplicative,
	}
}

func TestModel_PredictReturnsHorizonRows(t *testing.T) {
	m := NewModel(defaultOptions())
	series := dailySeries(180, func(i int) float64 {
		return 100 + 0.1*float64(i) + 3*math.Sin(2*math.Pi*float64(i)/7)
	})
	if err := m.Fit(series); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	preds, err := m.Predict(5)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if len(preds) != 5 {
		t.Fatalf("Predict returned %d rows, want 5", len(preds))
	}
}

func TestModel_PredictionDatesFollowTraining(t *testing.T) {
	m := NewModel(defaultOptions())
	series := dailySeries(120, func(i int) float64 { return 50 + float64(i) })
	if err := m.Fit(series); err != nil {
		t.Fatal(err)
	}

	preds, err := m.Predict(5)
	if err != nil {
		t.Fatal(err)
	}

	last := series[len(series)-1].Date
	for i, p := range preds {
		want := last.AddDate(0, 0, i+1)
		if !p.Date.Equal(want) {
			t.Errorf("prediction %d date = %v, want %v", i, p.Date, want)
		}
	}
}

func TestModel_BoundsBracketPrediction(t *testing.T) {
	m := NewModel(defaultOptions())
	series := dailySeries(180, func(i int) float64 {
		return 200 + 0.5*float64(i) + 5*math.Cos(2*math.Pi*float64(i)/7)
	})
	if err := m.Fit(series); err != nil {
		t.Fatal(err)
	}

	preds, err := m.Predict(5)
	if err != nil {
		t.Fatal(err)
	}

	for i, p := range preds {
		if p.Lower > p.Value || p.Value > p.Upper {
			t.Errorf("prediction %d: bounds not ordered: lower=%v value=%v upper=%v",
				i, p.Lower, p.Value, p.Upper)
		}
		if p.Value <= 0 {
			t.Errorf("prediction %d: multiplicative prediction should be positive, got %v", i, p.Value)
		}
	}
}

func TestModel_TrendIsFollowed(t *testing.T) {
	// A clean upward trend should forecast above the last observed value.
	m := NewModel(Options{SeasonalityMode: ModeAdditive})
	series := dailySeries(60, func(i int) float64 { return 10 + 2*float64(i) })
	if err := m.Fit(series); err != nil {
		t.Fatal(err)
	}

	preds, err := m.Predict(3)
	if err != nil {
		t.Fatal(err)
	}

	lastValue := series[len(series)-1].Value
	for i, p := range preds {
		if p.Value <= lastValue {
			t.Errorf("prediction %d = %v, want above last observation %v", i, p.Value, lastValue)
		}
	}
}

func TestModel_FitRejectsShortSeries(t *testing.T) {
	m := NewModel(defaultOptions())
	series := dailySeries(10, func(i int) float64 { return 100 })
	if err := m.Fit(series); err == nil {
		t.Error("Fit should reject a series shorter than the coefficient count")
	}
}

func TestModel_FitRejectsNonPositiveMultiplicative(t *testing.T) {
	m := NewModel(defaultOptions())
	series := dailySeries(180, func(i int) float64 {
		if i == 90 {
			return 0
		}
		return 100
	})
	if err := m.Fit(series); err == nil {
		t.Error("Fit should reject non-positive values in multiplicative mode")
	}
}

func TestModel_PredictBeforeFit(t *testing.T) {
	m := NewModel(defaultOptions())
	if _, err := m.Predict(5); err == nil {
		t.Error("Predict before Fit should return an error")
	}
}
