package money

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes
const (
	EUR Code = "EUR" // Euro
	USD Code = "USD" // US Dollar
	GBP Code = "GBP" // British Pound
	PLN Code = "PLN" // Polish Zloty
	HUF Code = "HUF" // Hungarian Forint
	CZK Code = "CZK" // Czech Koruna
	RON Code = "RON" // Romanian Leu
	NOK Code = "NOK" // Norwegian Krone
	DKK Code = "DKK" // Danish Krone
	SEK Code = "SEK" // Swedish Krona
	ISK Code = "ISK" // Icelandic Krona
	BGN Code = "BGN" // Bulgarian Lev
	CHF Code = "CHF" // Swiss Franc
	CAD Code = "CAD" // Canadian Dollar
	JPY Code = "JPY" // Japanese Yen
)

// Supported lists every currency an issue can be denominated in, in the
// order they are offered to users.
var Supported = []Code{
	EUR, USD, GBP, PLN, HUF, CZK, RON, NOK, DKK, SEK, ISK, BGN, CHF, CAD, JPY,
}
