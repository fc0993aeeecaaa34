package deferral_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/transparency/infra/cache"
	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/amirasaad/transparency/pkg/money"
	service "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

type ServiceTestSuite struct {
	suite.Suite
	logs *bytes.Buffer
	svc  *service.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.svc = service.NewService(currency.Default, logger)
}

func (s *ServiceTestSuite) labels(a *service.Assessment) []string {
	out := make([]string, 0, len(a.Results))
	for _, r := range a.Results {
		out = append(out, r.Label.Text)
	}
	return out
}

func (s *ServiceTestSuite) TestAssess_Sovereign() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{
		Category:      deferral.CategorySovereign,
		IssuerCountry: deferral.CountryUK,
		Currency:      money.GBP,
		IssueSize:     amount("3000000000"),
		TradeSize:     amount("12000000"),
		Maturity:      deferral.Maturity5To15,
	})
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, a.ID)
	s.Equal(deferral.CategorySovereign, a.Category)
	s.Equal([]string{
		"Price and volume deferred 1 day",
		"Price and volume deferred 15 minutes",
	}, s.labels(a))
	s.Equal(service.RegimeUK, a.Results[0].Regime)
	s.Equal(service.RegimeEU, a.Results[1].Regime)
	s.Equal([]string{deferral.DMONote}, a.Notes)
	s.True(a.Amounts.IssueSizeEUR.Decimal.Equal(decimal.RequireFromString("3558000000")))
	s.False(a.Incomplete())
}

func (s *ServiceTestSuite) TestAssess_Corporate() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{
		Category:  deferral.CategoryCorporate,
		Currency:  money.EUR,
		IssueSize: amount("1000000000"),
		TradeSize: amount("3000000"),
		Rating:    deferral.RatingIG,
	})
	s.Require().NoError(err)

	s.Require().Len(a.Results, 2)
	s.Equal(deferral.CorporateCoveredGBP.Name, a.Results[0].Variant)
	s.Equal(deferral.OneDay, a.Results[0].Label)
	s.Equal(deferral.FifteenMinutes.Scoped(deferral.ScopeCorporate), a.Results[1].Label)
	s.Empty(a.Notes)
}

func (s *ServiceTestSuite) TestAssess_Covered() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{
		Category:  deferral.CategoryCovered,
		Currency:  money.EUR,
		IssueSize: amount("100000000"),
		TradeSize: amount("3000000"),
		Rating:    deferral.RatingHY,
	})
	s.Require().NoError(err)

	s.Require().Len(a.Results, 2)
	s.Equal("Price and volume in real time (covered bonds only)", a.Results[1].Label.Text)
	s.Equal(deferral.CoveredEUR.Name, a.Results[1].Variant)
}

func (s *ServiceTestSuite) TestAssess_UnknownCategory() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{Category: "municipal"})
	s.Require().ErrorIs(err, service.ErrUnknownCategory)
	s.Nil(a)
}

func (s *ServiceTestSuite) TestAssess_IncompleteInputIsNotAnError() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{
		Category:  deferral.CategorySovereign,
		Currency:  money.EUR,
		IssueSize: amount("3000000000"),
	})
	s.Require().NoError(err)

	s.True(a.Incomplete())
	for _, r := range a.Results {
		s.Equal(deferral.IncompleteInput, r.Label)
		s.ErrorIs(r.Label.Err(), deferral.ErrIncompleteInput)
	}
	s.False(a.Amounts.TradeSizeEUR.Valid)
	s.Contains(s.logs.String(), "level=WARN")
}

func (s *ServiceTestSuite) TestAssessCorporateCovered() {
	a, err := s.svc.AssessCorporateCovered(context.Background(), deferral.TradeInput{
		Currency:  money.GBP,
		IssueSize: amount("100000000"),
		TradeSize: amount("3000000"),
		Rating:    deferral.RatingIG,
	})
	s.Require().NoError(err)

	s.Require().Len(a.Results, 3)
	s.Equal(deferral.TwoWeeks, a.Results[0].Label)
	s.Equal(deferral.CorporateEUR.Name, a.Results[1].Variant)
	s.Equal(deferral.CoveredEUR.Name, a.Results[2].Variant)
	s.Equal(deferral.TierRealTime, a.Results[2].Label.Tier)
}

func (s *ServiceTestSuite) TestAssess_UniqueIDs() {
	in := deferral.TradeInput{Category: deferral.CategoryCovered}
	a, err := s.svc.Assess(context.Background(), in)
	s.Require().NoError(err)
	b, err := s.svc.Assess(context.Background(), in)
	s.Require().NoError(err)

	s.NotEqual(a.ID, b.ID)
}

type fixedConverter struct{ rate decimal.Decimal }

func (f fixedConverter) Normalize(amount decimal.Decimal, _ money.Code) currency.Amounts {
	return currency.Amounts{EUR: amount.Mul(f.rate), GBP: amount.Mul(f.rate)}
}

func (s *ServiceTestSuite) TestAssess_UsesInjectedConverter() {
	svc := service.NewService(fixedConverter{rate: decimal.NewFromInt(10)}, nil)

	a, err := svc.Assess(context.Background(), deferral.TradeInput{
		Category:  deferral.CategoryCovered,
		Currency:  money.USD,
		IssueSize: amount("100000000"),
		TradeSize: amount("3000000"),
		Rating:    deferral.RatingIG,
	})
	s.Require().NoError(err)

	s.Equal("30000000", a.Amounts.TradeSizeGBP.Decimal.String())
	s.Equal(deferral.ThreeMonths, a.Results[0].Label)
	s.Equal(deferral.EODPriceOneWeekVolume.Scoped(deferral.ScopeCovered), a.Results[1].Label)
}

func (s *ServiceTestSuite) TestGet_WithStore() {
	store := cache.NewMemoryCache[*service.Assessment](0)
	defer store.Close()
	svc := service.NewService(nil, nil, service.WithStore(store, time.Minute))

	a, err := svc.Assess(context.Background(), deferral.TradeInput{Category: deferral.CategoryCovered})
	s.Require().NoError(err)

	got, err := svc.Get(context.Background(), a.ID)
	s.Require().NoError(err)
	s.Same(a, got)

	_, err = svc.Get(context.Background(), uuid.New())
	s.ErrorIs(err, service.ErrAssessmentNotFound)
}

func (s *ServiceTestSuite) TestAssessment_JSONRoundTrip() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{
		Category:      deferral.CategorySovereign,
		IssuerCountry: deferral.CountryUK,
		Currency:      money.GBP,
		IssueSize:     decimal.NewNullDecimal(decimal.NewFromInt(3_000_000_000)),
		Maturity:      deferral.Maturity5To15,
	})
	s.Require().NoError(err)

	data, err := json.Marshal(a)
	s.Require().NoError(err)
	var got service.Assessment
	s.Require().NoError(json.Unmarshal(data, &got))

	s.Equal(a.ID, got.ID)
	s.Equal(a.Category, got.Category)
	s.Equal(a.Results, got.Results)
	s.Equal(a.Notes, got.Notes)
	s.True(got.Amounts.IssueSizeEUR.Valid)
	s.True(a.Amounts.IssueSizeEUR.Decimal.Equal(got.Amounts.IssueSizeEUR.Decimal))
	s.False(got.Amounts.TradeSizeGBP.Valid)
	s.True(got.Incomplete())
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (*service.Assessment, bool) {
	args := m.Called(ctx, key)
	a, _ := args.Get(0).(*service.Assessment)
	return a, args.Bool(1)
}

func (m *MockStore) Set(ctx context.Context, key string, a *service.Assessment, ttl time.Duration) {
	m.Called(ctx, key, a, ttl)
}

func (s *ServiceTestSuite) TestAssess_StoresUnderID() {
	store := new(MockStore)
	store.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*deferral.Assessment"), 5*time.Minute).Return()
	svc := service.NewService(nil, nil, service.WithStore(store, 5*time.Minute))

	a, err := svc.AssessCorporateCovered(context.Background(), deferral.TradeInput{})
	s.Require().NoError(err)

	store.AssertCalled(s.T(), "Set", mock.Anything, a.ID.String(), a, 5*time.Minute)
	store.AssertNumberOfCalls(s.T(), "Set", 1)
}

func (s *ServiceTestSuite) TestGet_StoreMiss() {
	id := uuid.New()
	store := new(MockStore)
	store.On("Get", mock.Anything, id.String()).Return(nil, false)
	svc := service.NewService(nil, nil, service.WithStore(store, time.Minute))

	_, err := svc.Get(context.Background(), id)
	s.ErrorIs(err, service.ErrAssessmentNotFound)
	store.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestGet_WithoutStore() {
	a, err := s.svc.Assess(context.Background(), deferral.TradeInput{Category: deferral.CategoryCovered})
	s.Require().NoError(err)

	_, err = s.svc.Get(context.Background(), a.ID)
	s.ErrorIs(err, service.ErrAssessmentNotFound)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
