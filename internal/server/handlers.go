package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/stockview/internal/clients/tavily"
	"github.com/bobmcallan/stockview/internal/common"
	"github.com/bobmcallan/stockview/internal/models"
	"github.com/bobmcallan/stockview/internal/services/stocks"
)

// serviceName appears in the health payload and root directory.
const serviceName = "stockview"

// validateTicker normalizes the ticker query parameter. Returns an error
// message when the ticker is empty after trimming — validation happens
// before any provider call.
func validateTicker(raw string) (string, string) {
	ticker := models.NormalizeTicker(raw)
	if ticker == "" {
		return "", "Ticker symbol cannot be empty"
	}
	return ticker, ""
}

// validateCompany trims the company query parameter.
func validateCompany(raw string) (string, string) {
	company := strings.TrimSpace(raw)
	if company == "" {
		return "", "Company name cannot be empty"
	}
	return company, ""
}

// handleRoot serves the endpoint directory. The catch-all "/" pattern also
// receives unknown paths, which get a 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Endpoint not found")
		return
	}
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Stock Analysis API",
		"service": serviceName,
		"version": common.GetVersion(),
		"endpoints": map[string]string{
			"/stock":   "Get historical stock data",
			"/predict": "Get stock price predictions",
			"/news":    "Get company news",
			"/suggest": "Get top gainers",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   serviceName,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker, errMsg := validateTicker(r.URL.Query().Get("ticker"))
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := s.stocks.GetStockData(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, stocks.ErrNoData) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("No data found for ticker %s", ticker))
			return
		}
		WriteError(w, http.StatusInternalServerError, "Error fetching stock data: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker, errMsg := validateTicker(r.URL.Query().Get("ticker"))
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := s.stocks.PredictStockPrices(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, stocks.ErrNoData) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("No data found for ticker %s", ticker))
			return
		}
		WriteError(w, http.StatusInternalServerError, "Error predicting stock prices: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	company, errMsg := validateCompany(r.URL.Query().Get("company"))
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := s.stocks.GetCompanyNews(r.Context(), company)
	if err != nil {
		if errors.Is(err, stocks.ErrSearchNotConfigured) {
			WriteError(w, http.StatusInternalServerError,
				"Tavily API key not configured. Set TAVILY_API_KEY or clients.tavily.api_key.")
			return
		}
		// Provider errors keep the provider's own status code and body.
		var apiErr *tavily.APIError
		if errors.As(err, &apiErr) {
			WriteError(w, apiErr.StatusCode, "Tavily API error: "+apiErr.Message)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Error fetching news: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resp, err := s.stocks.GetTopGainers(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Error fetching top gainers: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
