package cli

import (
	"fmt"

	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize AMOUNT CURRENCY",
		Short: "Convert an amount to EUR and GBP with the static rate tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			code, err := money.ParseCode(args[1])
			if err != nil {
				return err
			}
			out := rc.Currency.Normalize(cmd.Context(), amount, code)
			return rc.Printer.Normalized(Normalized{
				Amount:   amount.String(),
				Currency: code.String(),
				EUR:      out.EUR.String(),
				GBP:      out.GBP.String(),
			})
		},
	}
}

func newCurrenciesCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported issue currencies and their rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rc.Printer.Currencies(rc.Currency.ListAll(cmd.Context()))
		},
	}
}
