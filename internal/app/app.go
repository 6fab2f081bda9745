// Package app wires configuration, clients, and services into a runnable unit
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/stockview/internal/clients/eodhd"
	"github.com/bobmcallan/stockview/internal/clients/tavily"
	"github.com/bobmcallan/stockview/internal/common"
	"github.com/bobmcallan/stockview/internal/interfaces"
	"github.com/bobmcallan/stockview/internal/services/stocks"
)

// App holds all initialized clients and services.
type App struct {
	Config       *common.Config
	Logger       *common.Logger
	MarketClient interfaces.MarketDataClient
	SearchClient interfaces.SearchClient
	StockService interfaces.StockService
	StartupTime  time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, clients, and the aggregation
// service. configPath may be empty, in which case the default resolution
// logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load configuration - check provided path, STOCKVIEW_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("STOCKVIEW_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "stockview.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/stockview.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	// Market-data client is always constructed; a missing key surfaces as a
	// provider error on the first call rather than a startup failure.
	if config.Clients.EODHD.APIKey == "" {
		logger.Warn().Msg("EODHD API key not configured - market data requests will fail")
	}
	marketClient := eodhd.NewClient(config.Clients.EODHD.APIKey,
		eodhd.WithBaseURL(config.Clients.EODHD.BaseURL),
		eodhd.WithLogger(logger),
		eodhd.WithRateLimit(config.Clients.EODHD.RateLimit),
		eodhd.WithTimeout(config.Clients.EODHD.GetTimeout()),
	)

	// Search client is only constructed when a credential exists; /news
	// reports the absence as a configuration error at request time.
	var searchClient interfaces.SearchClient
	if config.Clients.Tavily.APIKey != "" {
		searchClient = tavily.NewClient(config.Clients.Tavily.APIKey,
			tavily.WithBaseURL(config.Clients.Tavily.BaseURL),
			tavily.WithLogger(logger),
			tavily.WithTimeout(config.Clients.Tavily.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("Tavily API key not configured - /news will be unavailable")
	}

	stockService := stocks.NewService(marketClient, searchClient, logger)

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return &App{
		Config:       config,
		Logger:       logger,
		MarketClient: marketClient,
		SearchClient: searchClient,
		StockService: stockService,
		StartupTime:  startupStart,
	}, nil
}
