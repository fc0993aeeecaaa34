package app

import (
	"log/slog"
	"time"

	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/pkg/currency"
	currencyScv "github.com/amirasaad/transparency/pkg/service/currency"
	"github.com/amirasaad/transparency/pkg/service/deferral"
)

// Deps contains the infrastructure the services are built from
type Deps struct {
	Normalizer   *currency.Normalizer
	CurrencyMeta []currency.Meta
	Logger       *slog.Logger
	Assessments  deferral.Store
}

type App struct {
	Deps            *Deps
	Config          *config.App
	DeferralService *deferral.Service
	CurrencyService *currencyScv.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Normalizer == nil {
		deps.Normalizer = currency.Default
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	var opts []deferral.Option
	if deps.Assessments != nil {
		ttl := 15 * time.Minute
		if cfg != nil && cfg.Cache != nil && cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		opts = append(opts, deferral.WithStore(deps.Assessments, ttl))
	}
	app.DeferralService = deferral.NewService(deps.Normalizer, deps.Logger, opts...)
	app.CurrencyService = currencyScv.New(deps.CurrencyMeta, deps.Normalizer, deps.Logger)
	return app
}
