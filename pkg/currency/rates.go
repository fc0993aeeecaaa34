package currency

import (
	"fmt"
	"sort"

	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// RateTable maps an issue currency to the rate that converts one unit of it
// into the table's home currency. A table is immutable once built.
type RateTable struct {
	home  money.Code
	rates map[money.Code]decimal.Decimal
}

// NewRateTable copies rates into a new table and validates it.
func NewRateTable(home money.Code, rates map[money.Code]decimal.Decimal) (RateTable, error) {
	t := RateTable{
		home:  home,
		rates: make(map[money.Code]decimal.Decimal, len(rates)),
	}
	for code, rate := range rates {
		t.rates[code] = rate
	}
	if err := t.Validate(); err != nil {
		return RateTable{}, err
	}
	return t, nil
}

func mustRateTable(home money.Code, rates map[money.Code]string) RateTable {
	parsed := make(map[money.Code]decimal.Decimal, len(rates))
	for code, rate := range rates {
		parsed[code] = decimal.RequireFromString(rate)
	}
	t, err := NewRateTable(home, parsed)
	if err != nil {
		panic(err)
	}
	return t
}

// EURRates converts each supported currency into euros.
var EURRates = mustRateTable(money.EUR, map[money.Code]string{
	money.EUR: "1",
	money.USD: "0.9",
	money.GBP: "1.186",
	money.PLN: "0.2337",
	money.HUF: "0.0025",
	money.CZK: "0.04",
	money.RON: "0.2",
	money.NOK: "0.085",
	money.DKK: "0.13",
	money.SEK: "0.088",
	money.ISK: "0.0065",
	money.BGN: "0.51",
	money.CHF: "1.07",
	money.CAD: "0.67",
	money.JPY: "0.0063",
})

// GBPRates converts each supported currency into pounds sterling.
var GBPRates = mustRateTable(money.GBP, map[money.Code]string{
	money.EUR: "0.8422",
	money.USD: "0.7581",
	money.GBP: "1",
	money.PLN: "0.2",
	money.HUF: "0.0021",
	money.CZK: "0.034",
	money.RON: "0.1693",
	money.NOK: "0.071",
	money.DKK: "0.1128",
	money.SEK: "0.074",
	money.ISK: "0.0055",
	money.BGN: "0.4304",
	money.CHF: "0.8975",
	money.CAD: "0.5612",
	money.JPY: "0.005293",
})

// Home returns the currency the table converts into.
func (t RateTable) Home() money.Code { return t.home }

// Lookup returns the rate for code and whether the table defines it.
func (t RateTable) Lookup(code money.Code) (decimal.Decimal, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// Rate returns the rate for code. Codes the table does not define convert
// one to one.
func (t RateTable) Rate(code money.Code) decimal.Decimal {
	if r, ok := t.rates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Convert expresses amount, denominated in code, in the home currency.
func (t RateTable) Convert(amount decimal.Decimal, code money.Code) decimal.Decimal {
	return amount.Mul(t.Rate(code))
}

// Codes returns the codes defined by the table in sorted order.
func (t RateTable) Codes() []money.Code {
	codes := make([]money.Code, 0, len(t.rates))
	for c := range t.rates {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Validate checks the table invariant.
func (t RateTable) Validate() error {
	if !t.home.IsSupported() {
		return fmt.Errorf("%w: unsupported home currency %q", ErrInvalidRateTable, t.home)
	}
	for _, code := range money.Supported {
		rate, ok := t.rates[code]
		if !ok {
			return fmt.Errorf("%w: %s table is missing %s", ErrInvalidRateTable, t.home, code)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("%w: %s table has non-positive rate %s for %s", ErrInvalidRateTable, t.home, rate, code)
		}
	}
	if !t.rates[t.home].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s table maps its home currency to %s", ErrInvalidRateTable, t.home, t.rates[t.home])
	}
	return nil
}
