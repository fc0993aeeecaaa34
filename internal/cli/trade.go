package cli

import (
	"fmt"

	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// tradeFlags holds the raw flag values of one trade. Sizes stay strings so
// an omitted flag is distinguishable from zero.
type tradeFlags struct {
	Category         string `yaml:"category"`
	Country          string `yaml:"issuer_country"`
	Currency         string `yaml:"currency"`
	IssueSize        string `yaml:"issue_size"`
	TradeSize        string `yaml:"trade_size"`
	Maturity         string `yaml:"maturity"`
	Rating           string `yaml:"rating"`
	StripOrInflation bool   `yaml:"strip_or_inflation"`
}

func (f *tradeFlags) bindSizes(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Currency, "currency", "", "issue currency (EUR, USD, GBP, ...)")
	cmd.Flags().StringVar(&f.IssueSize, "issue-size", "", "issue size in the issue currency, e.g. 3e9")
	cmd.Flags().StringVar(&f.TradeSize, "trade-size", "", "trade size in the issue currency, e.g. 12e6")
}

func (f *tradeFlags) bindRating(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Rating, "rating", "", "rating band: IG or HY")
}

func (f *tradeFlags) bindSovereign(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Country, "country", "", "issuer country: UK, FR, DE, IT, US, ES or Other")
	cmd.Flags().StringVar(&f.Maturity, "maturity", "", "residual maturity in years: <5, 5-15 or >15")
	cmd.Flags().BoolVar(&f.StripOrInflation, "strip", false, "strip or inflation-linked bond")
}

// input parses the raw values into a validated TradeInput.
func (f *tradeFlags) input() (deferral.TradeInput, error) {
	in := deferral.TradeInput{
		Category:         deferral.Category(f.Category),
		IssuerCountry:    deferral.Country(f.Country),
		Maturity:         deferral.Maturity(f.Maturity),
		Rating:           deferral.Rating(f.Rating),
		StripOrInflation: f.StripOrInflation,
	}
	if f.Currency != "" {
		c, err := money.ParseCode(f.Currency)
		if err != nil {
			return in, err
		}
		in.Currency = c
	}
	var err error
	if in.IssueSize, err = parseSize("issue size", f.IssueSize); err != nil {
		return in, err
	}
	if in.TradeSize, err = parseSize("trade size", f.TradeSize); err != nil {
		return in, err
	}
	return in, in.Validate()
}

func parseSize(name, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s %q", deferral.ErrInvalidInput, name, s)
	}
	return decimal.NewNullDecimal(d), nil
}
