package currency_test

import (
	"testing"

	currencyweb "github.com/amirasaad/transparency/webapi/currency"
	"github.com/amirasaad/transparency/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type CurrencyTestSuite struct {
	testutils.APITestSuite
}

func TestCurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyTestSuite))
}

func (s *CurrencyTestSuite) TestListCurrencies() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out []currencyweb.CurrencyResponse
	s.DecodeResponse(resp, &out)
	s.Require().Len(out, 15)
	s.Equal("EUR", out[0].Code)
	s.Equal("1", out[0].RateEUR)
	s.Equal("0.8422", out[0].RateGBP)
	s.Equal("JPY", out[14].Code)
	s.Equal("0.0063", out[14].RateEUR)
}

func (s *CurrencyTestSuite) TestListSupportedCurrencies() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies/supported", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out []string
	s.DecodeResponse(resp, &out)
	s.Len(out, 15)
	s.Contains(out, "ISK")
}

func (s *CurrencyTestSuite) TestGetCurrency() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies/chf", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out currencyweb.CurrencyResponse
	s.DecodeResponse(resp, &out)
	s.Equal("CHF", out.Code)
	s.Equal("Swiss Franc", out.Name)
}

func (s *CurrencyTestSuite) TestGetCurrency_Unsupported() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies/AUD", "")
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	s.Equal("Invalid currency code", pd.Title)
}

func (s *CurrencyTestSuite) TestSearchCurrencies() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/currencies/search?q=dollar", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out []currencyweb.CurrencyResponse
	s.DecodeResponse(resp, &out)
	s.Require().Len(out, 2)
	s.Equal("USD", out[0].Code)
	s.Equal("CAD", out[1].Code)

	resp = s.MakeRequest(fiber.MethodGet, "/api/currencies/search", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *CurrencyTestSuite) TestNormalize() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/currencies/normalize", `{"amount": 1000000, "currency": "JPY"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out currencyweb.NormalizeResponse
	s.DecodeResponse(resp, &out)
	s.Equal("6300", out.EUR)
	s.Equal("5293", out.GBP)
	s.Equal("JPY", out.Currency)
}

func (s *CurrencyTestSuite) TestNormalize_ZeroAmount() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/currencies/normalize", `{"amount": 0, "currency": "EUR"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out currencyweb.NormalizeResponse
	s.DecodeResponse(resp, &out)
	s.Equal("0", out.EUR)
	s.Equal("0", out.GBP)
}

func (s *CurrencyTestSuite) TestNormalize_MissingAmount() {
	for _, body := range []string{`{"currency": "EUR"}`, `{"amount": null, "currency": "EUR"}`} {
		resp := s.MakeRequest(fiber.MethodPost, "/api/currencies/normalize", body)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		pd := s.DecodeProblem(resp)
		s.Equal("Validation failed", pd.Title)
		s.Equal(currencyweb.ErrAmountRequired.Error(), pd.Detail)
	}
}

func (s *CurrencyTestSuite) TestNormalize_Invalid() {
	for _, body := range []string{
		`{"currency": "EUR"}`,
		`{"amount": -10, "currency": "EUR"}`,
		`{"amount": 10, "currency": "XXX"}`,
		`{"amount": 10}`,
	} {
		resp := s.MakeRequest(fiber.MethodPost, "/api/currencies/normalize", body)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		_ = resp.Body.Close()
	}
}

func (s *CurrencyTestSuite) TestUnknownRoute() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/nothing", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	s.Equal(fiber.StatusNotFound, pd.Status)
}
