package deferral

import (
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// LiquidCurrencies are the issue currencies eligible for the rating-specific
// UK corporate thresholds.
var LiquidCurrencies = []money.Code{money.EUR, money.USD, money.GBP}

// CorporateCoveredGBP is the UK regime for corporate, convertible, covered and
// other bonds, in GBP.
var CorporateCoveredGBP = &Ladder{
	Name: "uk-corporate",
	Rules: []Rule{
		{
			When: All(IssueAtLeast(Millions("500")), CurrencyIn(LiquidCurrencies...)),
			Then: &Ladder{
				Name: "uk-corporate-liquid",
				Rules: []Rule{
					{When: RatingIs(RatingIG), Then: fourTier("uk-corporate-ig",
						Millions("1"), Millions("5"), Millions("25"))},
					{When: RatingIs(RatingHY), Then: fourTier("uk-corporate-hy",
						Millions("1"), Millions("2.5"), Millions("10"))},
				},
			},
		},
		{
			When: Not(All(IssueAtLeast(Millions("500")), CurrencyIn(LiquidCurrencies...))),
			Then: fourTier("uk-corporate-small", Millions("0.5"), Millions("2.5"), Millions("10")),
		},
	},
	Fallback: ContactICMA,
}

// CorporateEUR is the EU regime for corporate, convertible and other bonds.
var CorporateEUR = euLadder("eu-corporate", Millions("500"), Millions("1"), Millions("5"), Millions("15"), ScopeCorporate)

// CoveredEUR is the EU regime for covered bonds.
var CoveredEUR = euLadder("eu-covered", Millions("250"), Millions("5"), Millions("15"), Millions("50"), ScopeCovered)

// euLadder builds the EU non-sovereign shape: real time below a; issue-size
// gated bands over [a,b) and [b,c); 4 weeks from c.
func euLadder(name string, issueGate, a, b, c decimal.Decimal, scope string) *Ladder {
	return &Ladder{
		Name: name,
		Rules: []Rule{
			{When: TradeBelow(a), Label: RealTime.Scoped(scope)},
			{When: All(IssueAtLeast(issueGate), TradeFrom(a, b)), Label: FifteenMinutes.Scoped(scope)},
			{When: All(IssueAtLeast(issueGate), TradeFrom(b, c)), Label: EODPriceOneWeekVolume.Scoped(scope)},
			{When: All(IssueBelow(issueGate), TradeFrom(a, b)), Label: EndOfDay.Scoped(scope)},
			{When: All(IssueBelow(issueGate), TradeFrom(b, c)), Label: EODPriceTwoWeekVolume.Scoped(scope)},
			{When: TradeAtLeast(c), Label: FourWeeks.Scoped(scope)},
		},
		Fallback: ContactICMA,
	}
}

// Ladders lists every rule variant, UK first.
var Ladders = []*Ladder{SovereignGBP, CorporateCoveredGBP, SovereignEUR, CorporateEUR, CoveredEUR}

// ClassifyCorporateCoveredGBP applies the UK corporate and covered regime.
// Sizes are in GBP; currency is the issue currency.
func ClassifyCorporateCoveredGBP(
	issueSizeGBP, tradeSizeGBP decimal.NullDecimal,
	issueCurrency money.Code,
	rating Rating,
) Label {
	if !issueSizeGBP.Valid || !tradeSizeGBP.Valid || issueCurrency == "" || rating == "" {
		return IncompleteInput
	}
	return CorporateCoveredGBP.Classify(Facts{
		IssueSize: issueSizeGBP.Decimal,
		TradeSize: tradeSizeGBP.Decimal,
		Currency:  issueCurrency,
		Rating:    rating,
	})
}

// ClassifyCorporateEUR applies the EU regime for corporate, convertible and
// other bonds. Sizes are in EUR.
func ClassifyCorporateEUR(issueSizeEUR, tradeSizeEUR decimal.NullDecimal) Label {
	if !issueSizeEUR.Valid || !tradeSizeEUR.Valid {
		return IncompleteInput
	}
	return CorporateEUR.Classify(Facts{IssueSize: issueSizeEUR.Decimal, TradeSize: tradeSizeEUR.Decimal})
}

// ClassifyCoveredEUR applies the EU regime for covered bonds. Sizes are in EUR.
func ClassifyCoveredEUR(issueSizeEUR, tradeSizeEUR decimal.NullDecimal) Label {
	if !issueSizeEUR.Valid || !tradeSizeEUR.Valid {
		return IncompleteInput
	}
	return CoveredEUR.Classify(Facts{IssueSize: issueSizeEUR.Decimal, TradeSize: tradeSizeEUR.Decimal})
}
