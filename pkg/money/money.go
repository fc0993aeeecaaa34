// Package money holds the currency codes bond issues can be denominated in.
//
// Invariants:
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - Supported contains each code exactly once.
package money

import (
	"fmt"
	"strings"
)

// IsValid checks if the currency code is well formed.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// IsSupported reports whether c is one of the supported issue currencies.
func (c Code) IsSupported() bool {
	for _, s := range Supported {
		if s == c {
			return true
		}
	}
	return false
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ParseCode normalizes user input (trimming, upper-casing) and checks that
// the result is a supported currency.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c)
	}
	return c, nil
}
