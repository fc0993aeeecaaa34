package currency

import (
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// Normalizer converts amounts with a pair of static rate tables. The EUR and
// GBP lookups are independent: a code missing from one table falls back to
// a rate of 1 there without affecting the other.
type Normalizer struct {
	eur RateTable
	gbp RateTable
}

// NewNormalizer builds a Normalizer over the given tables.
func NewNormalizer(eur, gbp RateTable) *Normalizer {
	return &Normalizer{eur: eur, gbp: gbp}
}

// Default uses the built-in EUR and GBP tables.
var Default = NewNormalizer(EURRates, GBPRates)

// Normalize converts amount, denominated in code, to EUR and GBP.
func (n *Normalizer) Normalize(amount decimal.Decimal, code money.Code) Amounts {
	return Amounts{
		EUR: n.eur.Convert(amount, code),
		GBP: n.gbp.Convert(amount, code),
	}
}

// NormalizeTrade converts the issue and trade size of one evaluation.
func (n *Normalizer) NormalizeTrade(issue, trade decimal.NullDecimal, code money.Code) TradeAmounts {
	return NormalizeTrade(n, issue, trade, code)
}

// EUR returns the euro table.
func (n *Normalizer) EUR() RateTable { return n.eur }

// GBP returns the sterling table.
func (n *Normalizer) GBP() RateTable { return n.gbp }

// Normalize converts with the built-in tables.
func Normalize(amount decimal.Decimal, code money.Code) Amounts {
	return Default.Normalize(amount, code)
}

// NormalizeTrade converts the issue and trade size of one evaluation with c.
// Absent sizes stay absent.
func NormalizeTrade(c Converter, issue, trade decimal.NullDecimal, code money.Code) TradeAmounts {
	var out TradeAmounts
	if issue.Valid {
		a := c.Normalize(issue.Decimal, code)
		out.IssueSizeEUR = decimal.NewNullDecimal(a.EUR)
		out.IssueSizeGBP = decimal.NewNullDecimal(a.GBP)
	}
	if trade.Valid {
		a := c.Normalize(trade.Decimal, code)
		out.TradeSizeEUR = decimal.NewNullDecimal(a.EUR)
		out.TradeSizeGBP = decimal.NewNullDecimal(a.GBP)
	}
	return out
}
