// Package cli implements the deferral command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/transparency/infra/initializer"
	currencyfixtures "github.com/amirasaad/transparency/internal/fixtures/currency"
	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/pkg/currency"
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootConfig is shared by every subcommand. Services are built in the root
// PersistentPreRunE so the --rates flag applies to all of them.
type RootConfig struct {
	RatesFile string
	JSON      bool
	NoColor   bool
	Verbose   bool

	Deferral *deferralsvc.Service
	Currency *currencysvc.Service
	Printer  *Printer
}

// NewRootCmd builds the deferral command tree.
func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}
	cmd := &cobra.Command{
		Use:   "deferral",
		Short: "Post-trade transparency deferral calculator for bond trades",
		Long: `Deferral computes the UK and EU post-trade transparency deferral that
applies to a bond trade, from its category, issue size, trade size and
issue currency.

Examples:
  deferral assess --category sovereign-public --country UK --currency GBP \
    --issue-size 3e9 --trade-size 12e6 --maturity 5-15
  deferral corporate-covered --currency EUR --issue-size 600e6 --trade-size 2e6 --rating IG
  deferral normalize 1000000 JPY
  deferral variants
  deferral batch trades.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rc.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&rc.RatesFile, "rates", config.GetEnv(config.EnvRatesFile, ""),
		"YAML file overriding the built-in rate tables ($RATES_FILE)")
	cmd.PersistentFlags().BoolVar(&rc.JSON, "json", config.GetEnvAsBool(config.EnvJSON, false),
		"print JSON instead of text ($DEFERRAL_JSON)")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", config.IsEnvSet(config.EnvNoColor),
		"disable coloured output ($NO_COLOR)")
	cmd.PersistentFlags().BoolVarP(&rc.Verbose, "verbose", "v", config.GetEnvAsBool(config.EnvVerbose, false),
		"log every evaluated variant to stderr ($DEFERRAL_VERBOSE)")

	cmd.AddCommand(
		newAssessCmd(rc),
		newCorporateCoveredCmd(rc),
		newNormalizeCmd(rc),
		newCurrenciesCmd(rc),
		newBatchCmd(rc),
		newVariantsCmd(rc),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (rc *RootConfig) setup(cmd *cobra.Command) error {
	level := log.ErrorLevel
	if rc.Verbose {
		level = log.DebugLevel
	}
	logger := initializer.SetupLogger(cmd.ErrOrStderr(), &config.Log{
		Level:      int(level),
		Format:     "text",
		TimeFormat: "15:04:05",
		Prefix:     "[deferral]",
	})

	normalizer := currency.Default
	if rc.RatesFile != "" {
		n, err := currency.LoadRateTables(rc.RatesFile)
		if err != nil {
			return fmt.Errorf("load rate tables: %w", err)
		}
		normalizer = n
	}

	metas, err := currencyfixtures.LoadCurrencyMetaCSV("")
	if err != nil {
		logger.Warn("Failed to load currency meta from CSV", "error", err)
	}

	rc.Deferral = deferralsvc.NewService(normalizer, logger)
	rc.Currency = currencysvc.New(metas, normalizer, logger)
	rc.Printer = NewPrinter(cmd.OutOrStdout(), !rc.NoColor && isTerminal(cmd.OutOrStdout()), rc.JSON)
	slog.Debug("CLI ready", "rates_file", rc.RatesFile)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
