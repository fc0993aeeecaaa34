package currency

import (
	"errors"

	"github.com/amirasaad/transparency/pkg/money"
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	"github.com/shopspring/decimal"
)

// ErrAmountRequired is returned when a normalize request has no amount.
var ErrAmountRequired = errors.New("amount is required")

// NormalizeRequest represents the request body for normalizing an amount.
// Zero is a valid amount; a missing one is rejected by the handler.
type NormalizeRequest struct {
	Amount   decimal.NullDecimal `json:"amount" validate:"omitempty,gte=0" swaggertype:"number"`
	Currency string              `json:"currency" validate:"required,oneof=EUR USD GBP PLN HUF CZK RON NOK DKK SEK ISK BGN CHF CAD JPY"`
}

// NormalizeResponse represents the normalized amount.
type NormalizeResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	EUR      string `json:"eur"`
	GBP      string `json:"gbp"`
}

// CurrencyResponse represents the response structure for currency data
type CurrencyResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Country  string `json:"country,omitempty"`
	Region   string `json:"region,omitempty"`
	RateEUR  string `json:"rate_eur"`
	RateGBP  string `json:"rate_gbp"`
}

// ToResponse converts a listing to a response DTO
func ToResponse(l *currencysvc.Listing) *CurrencyResponse {
	if l == nil {
		return nil
	}
	return &CurrencyResponse{
		Code:     l.Code.String(),
		Name:     l.Name,
		Symbol:   l.Symbol,
		Decimals: l.Decimals,
		Country:  l.Country,
		Region:   l.Region,
		RateEUR:  l.RateEUR.String(),
		RateGBP:  l.RateGBP.String(),
	}
}

// ToResponses converts listings to response DTOs
func ToResponses(ls []currencysvc.Listing) []*CurrencyResponse {
	out := make([]*CurrencyResponse, 0, len(ls))
	for i := range ls {
		out = append(out, ToResponse(&ls[i]))
	}
	return out
}

func (r *NormalizeRequest) code() money.Code {
	return money.Code(r.Currency)
}
