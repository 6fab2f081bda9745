// Package forecast fits a seasonal time-series model to daily observations
// and projects it forward with uncertainty bounds.
//
// The model is a harmonic regression: a linear trend plus Fourier terms for
// yearly and weekly seasonality, fit by ordinary least squares. Multiplicative
// seasonality is realized by fitting in log space. Bounds come from the
// residual spread of the fit at the configured interval width.
package forecast

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Seasonality modes
const (
	ModeAdditive       = "additive"
	ModeMultiplicative = "multiplicative"
)

// Seasonal periods in days and their Fourier orders
const (
	yearlyPeriod = 365.25
	weeklyPeriod = 7.0
	dailyPeriod  = 1.0

	yearlyOrder = 10
	weeklyOrder = 3
	dailyOrder  = 4
)

// Options configures the model. The zero value disables all seasonal
// components and fits an additive trend-only model.
type Options struct {
	YearlySeasonality bool
	WeeklySeasonality bool
	DailySeasonality  bool
	SeasonalityMode   string  // ModeAdditive or ModeMultiplicative
	IntervalWidth     float64 // uncertainty interval width, default 0.80
}

// Point is one observation in the training series.
type Point struct {
	Date  time.Time
	Value float64
}

// Prediction is one forecast row.
type Prediction struct {
	Date  time.Time
	Value float64
	Lower float64
	Upper float64
}

// Model is a fitted harmonic regression. Fit must be called before Predict.
type Model struct {
	opts   Options
	origin time.Time
	last   time.Time
	beta   *mat.VecDense
	sigma  float64
	z      float64
	fitted bool
}

// NewModel creates an unfitted model with the given options.
func NewModel(opts Options) *Model {
	if opts.SeasonalityMode == "" {
		opts.SeasonalityMode = ModeAdditive
	}
	if opts.IntervalWidth <= 0 || opts.IntervalWidth >= 1 {
		opts.IntervalWidth = 0.80
	}
	return &Model{opts: opts}
}

// numFeatures returns the width of the design matrix.
func (m *Model) numFeatures() int {
	p := 2 // intercept + trend
	if m.opts.YearlySeasonality {
		p += 2 * yearlyOrder
	}
	if m.opts.WeeklySeasonality {
		p += 2 * weeklyOrder
	}
	if m.opts.DailySeasonality {
		p += 2 * dailyOrder
	}
	return p
}

// features builds one design-matrix row for an elapsed time of t days.
func (m *Model) features(t float64) []float64 {
	row := make([]float64, 0, m.numFeatures())
	row = append(row, 1, t)
	appendFourier := func(period float64, order int) {
		for k := 1; k <= order; k++ {
			arg := 2 * math.Pi * float64(k) * t / period
			row = append(row, math.Sin(arg), math.Cos(arg))
		}
	}
	if m.opts.YearlySeasonality {
		appendFourier(yearlyPeriod, yearlyOrder)
	}
	if m.opts.WeeklySeasonality {
		appendFourier(weeklyPeriod, weeklyOrder)
	}
	if m.opts.DailySeasonality {
		appendFourier(dailyPeriod, dailyOrder)
	}
	return row
}

// elapsedDays returns fractional days between the series origin and t.
func (m *Model) elapsedDays(t time.Time) float64 {
	return t.Sub(m.origin).Hours() / 24
}

// Fit estimates the model coefficients from the training series.
// Points must be in chronological order.
func (m *Model) Fit(points []Point) error {
	n := len(points)
	p := m.numFeatures()
	if n < p {
		return fmt.Errorf("forecast: %d observations is too few to fit %d coefficients", n, p)
	}

	m.origin = points[0].Date
	m.last = points[n-1].Date

	y := make([]float64, n)
	for i, pt := range points {
		v := pt.Value
		if m.opts.SeasonalityMode == ModeMultiplicative {
			if v <= 0 {
				return fmt.Errorf("forecast: multiplicative seasonality requires positive values, got %v on %s",
					pt.Value, pt.Date.Format("2006-01-02"))
			}
			v = math.Log(v)
		}
		y[i] = v
	}

	design := make([]float64, 0, n*p)
	for _, pt := range points {
		design = append(design, m.features(m.elapsedDays(pt.Date))...)
	}

	X := mat.NewDense(n, p, design)
	yVec := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(X)

	beta := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(beta, false, yVec); err != nil {
		return fmt.Errorf("forecast: least squares solve failed: %w", err)
	}
	m.beta = beta

	// Residual spread drives the uncertainty interval
	residuals := make([]float64, n)
	var fitVec mat.VecDense
	fitVec.MulVec(X, beta)
	for i := 0; i < n; i++ {
		residuals[i] = y[i] - fitVec.AtVec(i)
	}
	m.sigma = stat.StdDev(residuals, nil)
	m.z = distuv.UnitNormal.Quantile(0.5 + m.opts.IntervalWidth/2)

	m.fitted = true
	return nil
}

// Predict projects the fitted model horizonDays calendar days past the last
// training observation, one prediction per day.
func (m *Model) Predict(horizonDays int) ([]Prediction, error) {
	if !m.fitted {
		return nil, fmt.Errorf("forecast: model has not been fit")
	}

	preds := make([]Prediction, horizonDays)
	for i := 0; i < horizonDays; i++ {
		date := m.last.AddDate(0, 0, i+1)
		row := m.features(m.elapsedDays(date))
		est := mat.Dot(mat.NewVecDense(len(row), row), m.beta)

		lower := est - m.z*m.sigma
		upper := est + m.z*m.sigma
		if m.opts.SeasonalityMode == ModeMultiplicative {
			est = math.Exp(est)
			lower = math.Exp(lower)
			upper = math.Exp(upper)
		}

		preds[i] = Prediction{
			Date:  date,
			Value: est,
			Lower: lower,
			Upper: upper,
		}
	}

	return preds, nil
}
