// Package deferral classifies bond trades into post-trade transparency
// deferral periods.
//
// Every rule variant is a Ladder: an ordered list of rules, each guarded by a
// predicate over Facts. The first rule whose predicate holds decides the
// outcome. A rule may hand over to a nested ladder instead of naming a label;
// when the nested ladder has no matching rule, evaluation continues with the
// next rule of the outer ladder. A ladder with no matching rule returns its
// fallback label.
package deferral

import (
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// Facts are the normalized inputs a ladder is evaluated against. Sizes are in
// the ladder's reporting currency.
type Facts struct {
	IssueSize        decimal.Decimal
	TradeSize        decimal.Decimal
	Country          Country
	Currency         money.Code
	Maturity         Maturity
	StripOrInflation bool
	Rating           Rating
}

// Predicate decides whether a rule applies.
type Predicate func(Facts) bool

// Rule is one step of a Ladder. Exactly one of Label or Then is meaningful:
// when Then is set the rule delegates to it.
type Rule struct {
	When  Predicate
	Label Label
	Then  *Ladder
}

// Ladder is an ordered set of rules with a fallback label.
type Ladder struct {
	Name     string
	Rules    []Rule
	Fallback Label
}

// Classify returns the label of the first matching rule, or the fallback.
func (l *Ladder) Classify(f Facts) Label {
	if label, ok := l.match(f); ok {
		return label
	}
	return l.Fallback
}

func (l *Ladder) match(f Facts) (Label, bool) {
	for _, r := range l.Rules {
		if r.When != nil && !r.When(f) {
			continue
		}
		if r.Then != nil {
			if label, ok := r.Then.match(f); ok {
				return label, true
			}
			continue
		}
		return r.Label, true
	}
	return Label{}, false
}

// Labels returns every label the ladder can produce, nested ladders
// included, fallback last. Duplicates are removed.
func (l *Ladder) Labels() []Label {
	var out []Label
	seen := make(map[Label]bool)
	var walk func(*Ladder)
	walk = func(l *Ladder) {
		for _, r := range l.Rules {
			if r.Then != nil {
				walk(r.Then)
				continue
			}
			if !seen[r.Label] {
				seen[r.Label] = true
				out = append(out, r.Label)
			}
		}
	}
	walk(l)
	if !seen[l.Fallback] {
		out = append(out, l.Fallback)
	}
	return out
}

// Variant is a ladder together with the outcomes it can produce.
type Variant struct {
	Name   string  `json:"name"`
	Labels []Label `json:"labels"`
}

// Variants describes every given ladder in order.
func Variants(ls ...*Ladder) []Variant {
	out := make([]Variant, 0, len(ls))
	for _, l := range ls {
		out = append(out, Variant{Name: l.Name, Labels: l.Labels()})
	}
	return out
}

var million = decimal.NewFromInt(1_000_000)

// Millions converts a figure in millions, e.g. "2.5", to a decimal amount.
func Millions(m string) decimal.Decimal {
	return decimal.RequireFromString(m).Mul(million)
}

// TradeAtMost holds when trade size <= x.
func TradeAtMost(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.TradeSize.LessThanOrEqual(x) }
}

// TradeBelow holds when trade size < x.
func TradeBelow(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.TradeSize.LessThan(x) }
}

// TradeAbove holds when trade size > x.
func TradeAbove(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.TradeSize.GreaterThan(x) }
}

// TradeAtLeast holds when trade size >= x.
func TradeAtLeast(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.TradeSize.GreaterThanOrEqual(x) }
}

// TradeBetween holds when lo < trade size <= hi.
func TradeBetween(lo, hi decimal.Decimal) Predicate {
	return All(TradeAbove(lo), TradeAtMost(hi))
}

// TradeFrom holds when lo <= trade size < hi.
func TradeFrom(lo, hi decimal.Decimal) Predicate {
	return All(TradeAtLeast(lo), TradeBelow(hi))
}

// IssueAtLeast holds when issue size >= x.
func IssueAtLeast(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.IssueSize.GreaterThanOrEqual(x) }
}

// IssueBelow holds when issue size < x.
func IssueBelow(x decimal.Decimal) Predicate {
	return func(f Facts) bool { return f.IssueSize.LessThan(x) }
}

// CountryIn holds when the issuer country is one of cs.
func CountryIn(cs ...Country) Predicate {
	return func(f Facts) bool {
		for _, c := range cs {
			if f.Country == c {
				return true
			}
		}
		return false
	}
}

// CurrencyIn holds when the issue currency is one of cs.
func CurrencyIn(cs ...money.Code) Predicate {
	return func(f Facts) bool {
		for _, c := range cs {
			if f.Currency == c {
				return true
			}
		}
		return false
	}
}

// RatingIs holds for bonds rated r.
func RatingIs(r Rating) Predicate {
	return func(f Facts) bool { return f.Rating == r }
}

// MaturityIs holds for bonds in bucket m.
func MaturityIs(m Maturity) Predicate {
	return func(f Facts) bool { return f.Maturity == m }
}

// StripOrInflation holds for strips and inflation-linked bonds.
func StripOrInflation() Predicate {
	return func(f Facts) bool { return f.StripOrInflation }
}

// All holds when every predicate holds.
func All(ps ...Predicate) Predicate {
	return func(f Facts) bool {
		for _, p := range ps {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(f Facts) bool { return !p(f) }
}

// fourTier builds the common UK ladder: real time up to a, 1 day up to b,
// 2 weeks up to c, 3 months above c. Each band includes its upper bound.
func fourTier(name string, a, b, c decimal.Decimal) *Ladder {
	return &Ladder{
		Name: name,
		Rules: []Rule{
			{When: TradeAtMost(a), Label: RealTime},
			{When: TradeBetween(a, b), Label: OneDay},
			{When: TradeBetween(b, c), Label: TwoWeeks},
			{When: TradeAbove(c), Label: ThreeMonths},
		},
	}
}
