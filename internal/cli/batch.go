package cli

import (
	"errors"
	"fmt"
	"os"

	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrEmptyBatch is returned for a batch file without trades.
var ErrEmptyBatch = errors.New("batch file has no trades")

// batchTrade is one entry of a batch file. Form "corporate-covered" selects
// the combined corporate form; anything else assesses by category.
type batchTrade struct {
	Name       string `yaml:"name"`
	Form       string `yaml:"form"`
	tradeFlags `yaml:",inline"`
}

type batchFile struct {
	Trades []batchTrade `yaml:"trades"`
}

func loadBatch(path string) ([]batchTrade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}
	if len(f.Trades) == 0 {
		return nil, ErrEmptyBatch
	}
	return f.Trades, nil
}

func newBatchCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Assess every trade listed in a YAML file",
		Long: `Batch reads a YAML file of trades and prints one assessment per trade.

  trades:
    - name: gilt
      category: sovereign-public
      issuer_country: UK
      currency: GBP
      issue_size: 3e9
      trade_size: 12e6
      maturity: 5-15
    - name: covered
      form: corporate-covered
      currency: EUR
      issue_size: 100e6
      trade_size: 3e6
      rating: IG

A trade that fails validation is reported and skipped; the command fails
after printing the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trades, err := loadBatch(args[0])
			if err != nil {
				return err
			}
			var errs []error
			for i, t := range trades {
				name := t.Name
				if name == "" {
					name = fmt.Sprintf("#%d", i+1)
				}
				a, err := rc.assessBatchTrade(cmd, t)
				if err != nil {
					errs = append(errs, fmt.Errorf("trade %s: %w", name, err))
					continue
				}
				if err := rc.Printer.Assessment(a); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
}

func (rc *RootConfig) assessBatchTrade(cmd *cobra.Command, t batchTrade) (*deferralsvc.Assessment, error) {
	in, err := t.input()
	if err != nil {
		return nil, err
	}
	if t.Form == "corporate-covered" {
		return rc.Deferral.AssessCorporateCovered(cmd.Context(), in)
	}
	return rc.Deferral.Assess(cmd.Context(), in)
}
