package deferral

import (
	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/amirasaad/transparency/pkg/money"
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeRequest represents the request body for assessing a trade. Sizes are
// in the issue currency; omitted sizes produce an incomplete-input result.
type TradeRequest struct {
	Category         string              `json:"category" validate:"required,oneof=sovereign-public corporate-convertible-other covered"`
	IssuerCountry    string              `json:"issuer_country" validate:"omitempty,oneof=UK FR DE IT US ES Other"`
	Currency         string              `json:"currency" validate:"omitempty,oneof=EUR USD GBP PLN HUF CZK RON NOK DKK SEK ISK BGN CHF CAD JPY"`
	IssueSize        decimal.NullDecimal `json:"issue_size" validate:"omitempty,gte=0" swaggertype:"number"`
	TradeSize        decimal.NullDecimal `json:"trade_size" validate:"omitempty,gte=0" swaggertype:"number"`
	Maturity         string              `json:"maturity" validate:"omitempty,oneof=<5 5-15 >15"`
	StripOrInflation bool                `json:"strip_or_inflation"`
	Rating           string              `json:"rating" validate:"omitempty,oneof=IG HY"`
}

// ToInput converts the request to a service input.
func (r *TradeRequest) ToInput() deferral.TradeInput {
	return deferral.TradeInput{
		Category:         deferral.Category(r.Category),
		IssuerCountry:    deferral.Country(r.IssuerCountry),
		Currency:         money.Code(r.Currency),
		IssueSize:        r.IssueSize,
		TradeSize:        r.TradeSize,
		Maturity:         deferral.Maturity(r.Maturity),
		StripOrInflation: r.StripOrInflation,
		Rating:           deferral.Rating(r.Rating),
	}
}

// CorporateCoveredRequest represents the request body for the combined
// corporate and covered form.
type CorporateCoveredRequest struct {
	Currency  string              `json:"currency" validate:"omitempty,oneof=EUR USD GBP PLN HUF CZK RON NOK DKK SEK ISK BGN CHF CAD JPY"`
	IssueSize decimal.NullDecimal `json:"issue_size" validate:"omitempty,gte=0" swaggertype:"number"`
	TradeSize decimal.NullDecimal `json:"trade_size" validate:"omitempty,gte=0" swaggertype:"number"`
	Rating    string              `json:"rating" validate:"omitempty,oneof=IG HY"`
}

// ToInput converts the request to a service input.
func (r *CorporateCoveredRequest) ToInput() deferral.TradeInput {
	return deferral.TradeInput{
		Currency:  money.Code(r.Currency),
		IssueSize: r.IssueSize,
		TradeSize: r.TradeSize,
		Rating:    deferral.Rating(r.Rating),
	}
}

// ResultDTO is one regime's outcome.
type ResultDTO struct {
	Regime   string `json:"regime"`
	Variant  string `json:"variant"`
	Currency string `json:"currency"`
	Deferral string `json:"deferral"`
	Tier     int    `json:"tier"`
	Error    string `json:"error,omitempty"`
}

// AmountsDTO echoes the normalized sizes. Absent sizes are null.
type AmountsDTO struct {
	IssueSizeEUR *string `json:"issue_size_eur"`
	IssueSizeGBP *string `json:"issue_size_gbp"`
	TradeSizeEUR *string `json:"trade_size_eur"`
	TradeSizeGBP *string `json:"trade_size_gbp"`
}

// AssessmentResponse represents the response structure for an assessment.
type AssessmentResponse struct {
	ID       uuid.UUID   `json:"id"`
	Category string      `json:"category,omitempty"`
	Amounts  AmountsDTO  `json:"amounts"`
	Results  []ResultDTO `json:"results"`
	Notes    []string    `json:"notes,omitempty"`
}

// ToResponse converts an assessment to a response DTO
func ToResponse(a *deferralsvc.Assessment) *AssessmentResponse {
	if a == nil {
		return nil
	}
	results := make([]ResultDTO, 0, len(a.Results))
	for _, r := range a.Results {
		dto := ResultDTO{
			Regime:   string(r.Regime),
			Variant:  r.Variant,
			Currency: r.Currency,
			Deferral: r.Label.Text,
			Tier:     int(r.Label.Tier),
		}
		if err := r.Label.Err(); err != nil {
			dto.Error = err.Error()
		}
		results = append(results, dto)
	}
	return &AssessmentResponse{
		ID:       a.ID,
		Category: string(a.Category),
		Amounts: AmountsDTO{
			IssueSizeEUR: optional(a.Amounts.IssueSizeEUR),
			IssueSizeGBP: optional(a.Amounts.IssueSizeGBP),
			TradeSizeEUR: optional(a.Amounts.TradeSizeEUR),
			TradeSizeGBP: optional(a.Amounts.TradeSizeGBP),
		},
		Results: results,
		Notes:   a.Notes,
	}
}

func optional(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
