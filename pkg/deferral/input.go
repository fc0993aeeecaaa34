package deferral

import (
	"errors"
	"fmt"

	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// Country is the issuer country of a sovereign or public bond.
type Country string

// Issuer countries offered by the calculator.
const (
	CountryUK    Country = "UK"
	CountryFR    Country = "FR"
	CountryDE    Country = "DE"
	CountryIT    Country = "IT"
	CountryUS    Country = "US"
	CountryES    Country = "ES"
	CountryOther Country = "Other"
)

// Countries lists the selectable issuer countries.
var Countries = []Country{CountryUK, CountryFR, CountryDE, CountryIT, CountryUS, CountryES, CountryOther}

// IsValid reports whether c is a selectable issuer country.
func (c Country) IsValid() bool {
	for _, v := range Countries {
		if v == c {
			return true
		}
	}
	return false
}

// Maturity is the residual maturity bucket of a bond, in years.
type Maturity string

// Maturity buckets.
const (
	MaturityUnder5 Maturity = "<5"
	Maturity5To15  Maturity = "5-15"
	MaturityOver15 Maturity = ">15"
)

// Maturities lists the maturity buckets.
var Maturities = []Maturity{MaturityUnder5, Maturity5To15, MaturityOver15}

// IsValid reports whether m is a known bucket.
func (m Maturity) IsValid() bool {
	return m == MaturityUnder5 || m == Maturity5To15 || m == MaturityOver15
}

// Rating is the credit rating band of a corporate or covered bond.
type Rating string

// Rating bands.
const (
	RatingIG Rating = "IG" // investment grade
	RatingHY Rating = "HY" // high yield
)

// IsValid reports whether r is a known band.
func (r Rating) IsValid() bool {
	return r == RatingIG || r == RatingHY
}

// Category selects which rule variants apply to a bond.
type Category string

// Bond categories.
const (
	CategorySovereign Category = "sovereign-public"
	CategoryCorporate Category = "corporate-convertible-other"
	CategoryCovered   Category = "covered"
)

// Categories lists the bond categories.
var Categories = []Category{CategorySovereign, CategoryCorporate, CategoryCovered}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	return c == CategorySovereign || c == CategoryCorporate || c == CategoryCovered
}

// TradeInput carries everything a user can enter for one evaluation. Sizes
// are in the issue currency; an absent size has Valid set to false and an
// absent enum is the empty string. Not every field applies to every variant.
type TradeInput struct {
	Category         Category
	IssuerCountry    Country
	Currency         money.Code
	IssueSize        decimal.NullDecimal
	TradeSize        decimal.NullDecimal
	Maturity         Maturity
	StripOrInflation bool
	Rating           Rating
}

// ErrInvalidInput is returned by Validate for a field holding a value outside
// its domain.
var ErrInvalidInput = errors.New("invalid trade input")

// Validate checks the fields that are set. Absent fields are not errors; the
// classifiers report them as incomplete input.
func (in TradeInput) Validate() error {
	var errs []error
	if in.Category != "" && !in.Category.IsValid() {
		errs = append(errs, fmt.Errorf("%w: category %q", ErrInvalidInput, in.Category))
	}
	if in.IssuerCountry != "" && !in.IssuerCountry.IsValid() {
		errs = append(errs, fmt.Errorf("%w: issuer country %q", ErrInvalidInput, in.IssuerCountry))
	}
	if in.Currency != "" && !in.Currency.IsSupported() {
		errs = append(errs, fmt.Errorf("%w: currency %q", ErrInvalidInput, in.Currency))
	}
	if in.Maturity != "" && !in.Maturity.IsValid() {
		errs = append(errs, fmt.Errorf("%w: maturity %q", ErrInvalidInput, in.Maturity))
	}
	if in.Rating != "" && !in.Rating.IsValid() {
		errs = append(errs, fmt.Errorf("%w: rating %q", ErrInvalidInput, in.Rating))
	}
	if in.IssueSize.Valid && in.IssueSize.Decimal.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: negative issue size", ErrInvalidInput))
	}
	if in.TradeSize.Valid && in.TradeSize.Decimal.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: negative trade size", ErrInvalidInput))
	}
	return errors.Join(errs...)
}
