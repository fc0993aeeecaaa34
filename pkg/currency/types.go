package currency

import (
	"errors"

	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRateTable indicates a conversion table breaks the table invariant:
	// every supported code present, positive rates, home currency at exactly 1.
	ErrInvalidRateTable = errors.New("invalid rate table")
)

// Converter defines the interface for normalizing issue-currency amounts into
// the two reporting currencies.
type Converter interface {
	// Normalize converts amount, denominated in code, to EUR and GBP.
	Normalize(amount decimal.Decimal, code money.Code) Amounts
}

// Amounts is a single amount expressed in both reporting currencies.
type Amounts struct {
	EUR decimal.Decimal `json:"eur"`
	GBP decimal.Decimal `json:"gbp"`
}

// TradeAmounts holds the issue and trade sizes of one evaluation in both
// reporting currencies. Absent inputs stay absent in every currency.
type TradeAmounts struct {
	IssueSizeEUR decimal.NullDecimal `json:"issue_size_eur"`
	IssueSizeGBP decimal.NullDecimal `json:"issue_size_gbp"`
	TradeSizeEUR decimal.NullDecimal `json:"trade_size_eur"`
	TradeSizeGBP decimal.NullDecimal `json:"trade_size_gbp"`
}

// Meta describes a supported currency for listings.
type Meta struct {
	Code     money.Code `json:"code"`
	Name     string     `json:"name"`
	Symbol   string     `json:"symbol"`
	Decimals int        `json:"decimals"`
	Country  string     `json:"country"`
	Region   string     `json:"region"`
}
