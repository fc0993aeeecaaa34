package deferral

import "github.com/shopspring/decimal"

// BenchmarkIssuers are the countries whose large conventional issues get the
// maturity-specific UK thresholds.
var BenchmarkIssuers = []Country{CountryUK, CountryFR, CountryDE, CountryIT, CountryUS, CountryES}

// SovereignGBP is the UK regime for sovereign and public bonds, in GBP.
var SovereignGBP = &Ladder{
	Name: "uk-sovereign",
	Rules: []Rule{
		{
			When: All(IssueAtLeast(Millions("2000")), CountryIn(BenchmarkIssuers...), Not(StripOrInflation())),
			Then: &Ladder{
				Name: "uk-sovereign-benchmark",
				Rules: []Rule{
					{When: MaturityIs(MaturityUnder5), Then: &Ladder{
						Name: "uk-sovereign-under-5",
						Rules: []Rule{
							{When: TradeAtMost(Millions("15")), Label: RealTime},
							{When: All(TradeAbove(Millions("15")), TradeBelow(Millions("50"))), Label: OneDay},
							{When: TradeBetween(Millions("50"), Millions("500")), Label: TwoWeeks},
							{When: TradeAbove(Millions("500")), Label: ThreeMonths},
						},
					}},
					{When: MaturityIs(Maturity5To15), Then: fourTier("uk-sovereign-5-15",
						Millions("10"), Millions("25"), Millions("250"))},
					{When: MaturityIs(MaturityOver15), Then: fourTier("uk-sovereign-over-15",
						Millions("5"), Millions("10"), Millions("100"))},
				},
			},
		},
		{
			When: All(IssueAtLeast(Millions("2000")), Not(All(CountryIn(BenchmarkIssuers...), Not(StripOrInflation())))),
			Then: fourTier("uk-sovereign-other", Millions("1"), Millions("5"), Millions("25")),
		},
		{
			When: IssueBelow(Millions("2000")),
			Then: fourTier("uk-sovereign-small", Millions("1"), Millions("2.5"), Millions("10")),
		},
	},
	Fallback: ContactICMA,
}

// SovereignEUR is the EU regime for sovereign and public bonds, in EUR. The
// 4 week band is checked only after both issue-size branches.
var SovereignEUR = &Ladder{
	Name: "eu-sovereign",
	Rules: []Rule{
		{When: TradeBelow(Millions("5")), Label: RealTime},
		{When: IssueAtLeast(Millions("1000")), Then: &Ladder{
			Name: "eu-sovereign-large",
			Rules: []Rule{
				{When: TradeFrom(Millions("5"), Millions("15")), Label: FifteenMinutes},
				{When: TradeFrom(Millions("15"), Millions("50")), Label: EODPriceOneWeekVolume},
			},
		}},
		{When: IssueBelow(Millions("1000")), Then: &Ladder{
			Name: "eu-sovereign-small",
			Rules: []Rule{
				{When: TradeFrom(Millions("5"), Millions("15")), Label: EndOfDay},
				{When: TradeFrom(Millions("15"), Millions("50")), Label: EODPriceTwoWeekVolume},
			},
		}},
		{When: TradeAtLeast(Millions("50")), Label: FourWeeks},
	},
	Fallback: UnknownCondition,
}

// ClassifySovereignGBP applies the UK sovereign regime. Sizes are in GBP.
func ClassifySovereignGBP(
	issueSizeGBP, tradeSizeGBP decimal.NullDecimal,
	issuerCountry Country,
	stripOrInflation bool,
	maturity Maturity,
) Label {
	if !issueSizeGBP.Valid || !tradeSizeGBP.Valid {
		return IncompleteInput
	}
	return SovereignGBP.Classify(Facts{
		IssueSize:        issueSizeGBP.Decimal,
		TradeSize:        tradeSizeGBP.Decimal,
		Country:          issuerCountry,
		Maturity:         maturity,
		StripOrInflation: stripOrInflation,
	})
}

// ClassifySovereignEUR applies the EU sovereign regime. Sizes are in EUR.
func ClassifySovereignEUR(issueSizeEUR, tradeSizeEUR decimal.NullDecimal) Label {
	if !issueSizeEUR.Valid || !tradeSizeEUR.Valid {
		return IncompleteInput
	}
	return SovereignEUR.Classify(Facts{
		IssueSize: issueSizeEUR.Decimal,
		TradeSize: tradeSizeEUR.Decimal,
	})
}
