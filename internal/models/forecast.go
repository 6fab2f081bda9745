package models

import "time"

// ForecastPoint is one future day's predicted price with uncertainty bounds.
// lower_bound <= predicted <= upper_bound is expected from the model but not
// enforced at the HTTP layer.
type ForecastPoint struct {
	Date       Day     `json:"date"`
	Predicted  float64 `json:"predicted"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// ModelInfo describes the training window and horizon of a forecast.
type ModelInfo struct {
	TrainingPeriod    string `json:"training_period"`
	PredictionHorizon string `json:"prediction_horizon"`
}

// PredictionResponse is the /predict response envelope
type PredictionResponse struct {
	Ticker      string          `json:"ticker"`
	CompanyName string          `json:"company_name"`
	Predictions []ForecastPoint `json:"predictions"`
	ModelInfo   ModelInfo       `json:"model_info"`
	LastUpdated time.Time       `json:"last_updated"`
}
