package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrency is returned when a code is not three uppercase letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrUnsupportedCurrency is returned when a well-formed code is not one of
	// the supported issue currencies.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)
