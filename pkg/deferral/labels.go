package deferral

import "errors"

var (
	// ErrIncompleteInput marks a result computed without a required field.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrUnmatchedCondition marks a result no threshold band covered.
	ErrUnmatchedCondition = errors.New("unmatched condition")
)

// Tier orders deferral outcomes from most to least transparent. Sentinels
// have negative tiers.
type Tier int

// Tiers.
const (
	TierIncomplete Tier = -2
	TierUnmatched  Tier = -1
	TierRealTime   Tier = 1
	TierShort      Tier = 2 // 1 day, 15 minutes, end of day
	TierMedium     Tier = 3 // 2 weeks, end of day price with delayed volume
	TierLong       Tier = 4 // 3 months, 4 weeks
)

// Label is the outcome of one rule variant.
type Label struct {
	Text string `json:"text"`
	Tier Tier   `json:"tier"`
}

// String returns the display text.
func (l Label) String() string { return l.Text }

// IsSentinel reports whether l signals missing input or a gap in the rules.
func (l Label) IsSentinel() bool { return l.Tier < 0 }

// Err maps sentinels to ErrIncompleteInput or ErrUnmatchedCondition.
func (l Label) Err() error {
	switch l.Tier {
	case TierIncomplete:
		return ErrIncompleteInput
	case TierUnmatched:
		return ErrUnmatchedCondition
	default:
		return nil
	}
}

// Scoped qualifies a deferral label with the bond population it applies to.
// Sentinels are returned unchanged.
func (l Label) Scoped(scope string) Label {
	if l.IsSentinel() || scope == "" {
		return l
	}
	return Label{Text: l.Text + " (" + scope + ")", Tier: l.Tier}
}

// Deferral outcomes.
var (
	RealTime              = Label{Text: "Price and volume in real time", Tier: TierRealTime}
	OneDay                = Label{Text: "Price and volume deferred 1 day", Tier: TierShort}
	TwoWeeks              = Label{Text: "Price and volume deferred 2 weeks", Tier: TierMedium}
	ThreeMonths           = Label{Text: "Price and volume deferred 3 months", Tier: TierLong}
	FifteenMinutes        = Label{Text: "Price and volume deferred 15 minutes", Tier: TierShort}
	EndOfDay              = Label{Text: "Price and volume deferred EOD", Tier: TierShort}
	EODPriceOneWeekVolume = Label{Text: "EOD price deferral and 1 week volume deferral", Tier: TierMedium}
	EODPriceTwoWeekVolume = Label{Text: "EOD price deferral and 2 week volume deferral", Tier: TierMedium}
	FourWeeks             = Label{Text: "Price and volume deferred 4 weeks", Tier: TierLong}
)

// Sentinels.
var (
	IncompleteInput  = Label{Text: "Please fill all fields then click Calculate.", Tier: TierIncomplete}
	UnknownCondition = Label{Text: "Unknown condition", Tier: TierUnmatched}
	ContactICMA      = Label{Text: "Enter all fields or contact ICMA", Tier: TierUnmatched}
)

// Scopes appended to the EU corporate and covered labels.
const (
	ScopeCorporate = "corporate, convertible and other bonds"
	ScopeCovered   = "covered bonds only"
)

// DMONote accompanies every EU sovereign result.
const DMONote = "Depending on specific DMO, trade might be eligible for a 6 months deferral"
