package deferral_test

import (
	"testing"

	"github.com/amirasaad/transparency/pkg/deferral"
	deferralweb "github.com/amirasaad/transparency/webapi/deferral"
	"github.com/amirasaad/transparency/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DeferralTestSuite struct {
	testutils.APITestSuite
}

func TestDeferralTestSuite(t *testing.T) {
	suite.Run(t, new(DeferralTestSuite))
}

func (s *DeferralTestSuite) assess(path, body string) (*deferralweb.AssessmentResponse, int) {
	resp := s.MakeRequest(fiber.MethodPost, path, body)
	var out deferralweb.AssessmentResponse
	s.DecodeResponse(resp, &out)
	return &out, resp.StatusCode
}

func (s *DeferralTestSuite) TestAssess_Sovereign() {
	out, status := s.assess("/api/deferrals", `{
		"category": "sovereign-public",
		"issuer_country": "UK",
		"currency": "GBP",
		"issue_size": 3000000000,
		"trade_size": 12000000,
		"maturity": "5-15"
	}`)

	s.Equal(fiber.StatusOK, status)
	s.NotEqual(uuid.Nil, out.ID)
	s.Equal("sovereign-public", out.Category)
	s.Require().Len(out.Results, 2)
	s.Equal("UK", out.Results[0].Regime)
	s.Equal("Price and volume deferred 1 day", out.Results[0].Deferral)
	s.Equal("EU", out.Results[1].Regime)
	s.Equal("Price and volume deferred 15 minutes", out.Results[1].Deferral)
	s.Equal([]string{deferral.DMONote}, out.Notes)
	s.Require().NotNil(out.Amounts.IssueSizeEUR)
	s.Equal("3558000000", *out.Amounts.IssueSizeEUR)
}

func (s *DeferralTestSuite) TestAssess_CoveredRealTime() {
	out, status := s.assess("/api/deferrals", `{
		"category": "covered",
		"currency": "EUR",
		"issue_size": 100000000,
		"trade_size": 3000000,
		"rating": "IG"
	}`)

	s.Equal(fiber.StatusOK, status)
	s.Require().Len(out.Results, 2)
	s.Equal("Price and volume in real time (covered bonds only)", out.Results[1].Deferral)
	s.Equal(int(deferral.TierRealTime), out.Results[1].Tier)
	s.Empty(out.Results[1].Error)
}

func (s *DeferralTestSuite) TestAssess_MissingSizesIsIncomplete() {
	out, status := s.assess("/api/deferrals", `{"category": "corporate-convertible-other", "currency": "USD", "rating": "HY"}`)

	s.Equal(fiber.StatusOK, status)
	for _, r := range out.Results {
		s.Equal("Please fill all fields then click Calculate.", r.Deferral)
		s.Equal(deferral.ErrIncompleteInput.Error(), r.Error)
	}
	s.Nil(out.Amounts.TradeSizeGBP)
}

func (s *DeferralTestSuite) TestAssess_Gap() {
	out, status := s.assess("/api/deferrals", `{
		"category": "sovereign-public",
		"issuer_country": "DE",
		"currency": "GBP",
		"issue_size": 5000000000,
		"trade_size": 50000000,
		"maturity": "<5"
	}`)

	s.Equal(fiber.StatusOK, status)
	s.Equal("Enter all fields or contact ICMA", out.Results[0].Deferral)
	s.Equal(deferral.ErrUnmatchedCondition.Error(), out.Results[0].Error)
}

func (s *DeferralTestSuite) TestAssess_ValidationErrors() {
	tests := []struct {
		name string
		body string
	}{
		{"missing category", `{"currency": "EUR"}`},
		{"unknown category", `{"category": "municipal"}`},
		{"unsupported currency", `{"category": "covered", "currency": "AUD"}`},
		{"negative size", `{"category": "covered", "trade_size": -1}`},
		{"bad maturity", `{"category": "sovereign-public", "maturity": "30y"}`},
		{"bad rating", `{"category": "covered", "rating": "BBB"}`},
		{"malformed", `{"category": `},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/deferrals", tt.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			pd := s.DecodeProblem(resp)
			s.Equal(fiber.StatusBadRequest, pd.Status)
			s.Equal("/api/deferrals", pd.Instance)
		})
	}
}

func (s *DeferralTestSuite) TestAssessCorporateCovered() {
	out, status := s.assess("/api/deferrals/corporate-covered", `{
		"currency": "GBP",
		"issue_size": 100000000,
		"trade_size": 3000000,
		"rating": "IG"
	}`)

	s.Equal(fiber.StatusOK, status)
	s.Require().Len(out.Results, 3)
	s.Equal("Price and volume deferred 2 weeks", out.Results[0].Deferral)
	s.Equal("Price and volume deferred EOD (corporate, convertible and other bonds)", out.Results[1].Deferral)
	s.Equal("Price and volume in real time (covered bonds only)", out.Results[2].Deferral)
	s.Empty(out.Category)
}

func (s *DeferralTestSuite) TestGet_AfterAssess() {
	created, status := s.assess("/api/deferrals", `{"category": "covered"}`)
	s.Require().Equal(fiber.StatusOK, status)

	resp := s.MakeRequest(fiber.MethodGet, "/api/deferrals/"+created.ID.String(), "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var got deferralweb.AssessmentResponse
	s.DecodeResponse(resp, &got)
	s.Equal(created.ID, got.ID)
	s.Equal(created.Results, got.Results)
}

func (s *DeferralTestSuite) TestGet_NotFound() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/deferrals/"+uuid.NewString(), "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	s.Equal("Assessment not found", pd.Title)
}

func (s *DeferralTestSuite) TestGet_InvalidID() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/deferrals/not-a-uuid", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	pd := s.DecodeProblem(resp)
	s.Equal("Invalid assessment ID", pd.Title)
}
