package main

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/transparency/infra/initializer"
	"github.com/amirasaad/transparency/pkg/app"
	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/webapi"
	log "github.com/charmbracelet/log"
)

// @title ICMA Deferral Calculator API
// @version 1.0.0
// @description Post-trade transparency deferral calculator for bond trades under the UK and EU regimes
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := cfg.Server.Addr()
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
