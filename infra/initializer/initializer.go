package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amirasaad/transparency/infra/cache"
	currencyfixtures "github.com/amirasaad/transparency/internal/fixtures/currency"
	"github.com/amirasaad/transparency/pkg/app"
	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/service/deferral"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(os.Stdout, cfg.Log)
	deps.Logger = logger

	// Rate tables: built-in unless an override file is configured
	deps.Normalizer = currency.Default
	if cfg.Rates != nil && cfg.Rates.File != "" {
		logger.Info("Loading rate tables", "path", cfg.Rates.File)
		deps.Normalizer, err = currency.LoadRateTables(cfg.Rates.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load rate tables: %w", err)
		}
	} else {
		logger.Info("Using built-in rate tables",
			"eur_codes", len(currency.EURRates.Codes()),
			"gbp_codes", len(currency.GBPRates.Codes()))
	}

	// Load currency metadata from embedded CSV
	logger.Info("Loading embedded currency metadata")
	deps.CurrencyMeta, err = currencyfixtures.LoadCurrencyMetaCSV("")
	if err != nil {
		// Listings fall back to bare codes
		logger.Warn("Failed to load currency meta from CSV", "error", err)
	} else {
		logger.Info("Successfully loaded currency fixtures", "count", len(deps.CurrencyMeta))
	}

	if cfg.Cache != nil {
		deps.Assessments, err = newAssessmentStore(cfg.Cache, logger)
		if err != nil {
			return nil, err
		}
	}

	return
}

func newAssessmentStore(cfg *config.AssessmentCache, logger *slog.Logger) (deferral.Store, error) {
	if cfg.RedisURL == "" {
		logger.Info("Using in-memory assessment cache",
			"ttl", cfg.TTL, "cleanup_interval", cfg.CleanupInterval)
		return cache.NewMemoryCache[*deferral.Assessment](cfg.CleanupInterval), nil
	}
	store, err := cache.NewRedisCache[*deferral.Assessment](cfg.RedisURL, cfg.Prefix, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment cache: %w", err)
	}
	store.WithTimeout(cfg.RedisTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Using redis assessment cache",
		"ttl", cfg.TTL, "prefix", cfg.Prefix, "timeout", cfg.RedisTimeout)
	return store, nil
}
