// Package deferral assesses trades against every applicable transparency
// regime.
package deferral

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/google/uuid"
)

// Service evaluates trades against the UK and EU deferral regimes.
type Service struct {
	converter currency.Converter
	logger    *slog.Logger
	store     Store
	ttl       time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithStore keeps every assessment in store for ttl so it can be fetched
// again with Get.
func WithStore(store Store, ttl time.Duration) Option {
	return func(s *Service) {
		s.store = store
		s.ttl = ttl
	}
}

// NewService creates a new deferral service. A nil converter uses the
// built-in rate tables.
func NewService(
	converter currency.Converter,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if converter == nil {
		converter = currency.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		converter: converter,
		logger:    logger.With("service", "Deferral"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a stored assessment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	a, ok := s.store.Get(ctx, id.String())
	if !ok {
		s.logger.DebugContext(ctx, "Assessment not in store", "assessment_id", id)
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	return a, nil
}

// Assess normalizes the trade sizes and evaluates the UK and EU variants for
// the trade's category.
func (s *Service) Assess(ctx context.Context, in deferral.TradeInput) (*Assessment, error) {
	logger := s.logger.With("category", in.Category, "currency", in.Currency)

	amounts := s.normalize(in)
	var results []Result
	var notes []string
	switch in.Category {
	case deferral.CategorySovereign:
		results = []Result{
			s.sovereignGBP(in, amounts),
			{
				Regime:   RegimeEU,
				Variant:  deferral.SovereignEUR.Name,
				Currency: "EUR",
				Label:    deferral.ClassifySovereignEUR(amounts.IssueSizeEUR, amounts.TradeSizeEUR),
			},
		}
		notes = []string{deferral.DMONote}
	case deferral.CategoryCorporate:
		results = []Result{s.corporateGBP(in, amounts), corporateEUR(amounts)}
	case deferral.CategoryCovered:
		results = []Result{s.corporateGBP(in, amounts), coveredEUR(amounts)}
	default:
		logger.Error("Unknown bond category")
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, in.Category)
	}

	return s.finish(ctx, logger, in.Category, amounts, results, notes), nil
}

// AssessCorporateCovered evaluates the combined corporate and covered form:
// the UK corporate/covered variant plus both EU variants.
func (s *Service) AssessCorporateCovered(ctx context.Context, in deferral.TradeInput) (*Assessment, error) {
	logger := s.logger.With("form", "corporate-covered", "currency", in.Currency)

	amounts := s.normalize(in)
	results := []Result{
		s.corporateGBP(in, amounts),
		corporateEUR(amounts),
		coveredEUR(amounts),
	}
	return s.finish(ctx, logger, in.Category, amounts, results, nil), nil
}

func (s *Service) normalize(in deferral.TradeInput) currency.TradeAmounts {
	return currency.NormalizeTrade(s.converter, in.IssueSize, in.TradeSize, in.Currency)
}

func (s *Service) sovereignGBP(in deferral.TradeInput, a currency.TradeAmounts) Result {
	return Result{
		Regime:   RegimeUK,
		Variant:  deferral.SovereignGBP.Name,
		Currency: "GBP",
		Label: deferral.ClassifySovereignGBP(
			a.IssueSizeGBP, a.TradeSizeGBP,
			in.IssuerCountry, in.StripOrInflation, in.Maturity,
		),
	}
}

func (s *Service) corporateGBP(in deferral.TradeInput, a currency.TradeAmounts) Result {
	return Result{
		Regime:   RegimeUK,
		Variant:  deferral.CorporateCoveredGBP.Name,
		Currency: "GBP",
		Label:    deferral.ClassifyCorporateCoveredGBP(a.IssueSizeGBP, a.TradeSizeGBP, in.Currency, in.Rating),
	}
}

func corporateEUR(a currency.TradeAmounts) Result {
	return Result{
		Regime:   RegimeEU,
		Variant:  deferral.CorporateEUR.Name,
		Currency: "EUR",
		Label:    deferral.ClassifyCorporateEUR(a.IssueSizeEUR, a.TradeSizeEUR),
	}
}

func coveredEUR(a currency.TradeAmounts) Result {
	return Result{
		Regime:   RegimeEU,
		Variant:  deferral.CoveredEUR.Name,
		Currency: "EUR",
		Label:    deferral.ClassifyCoveredEUR(a.IssueSizeEUR, a.TradeSizeEUR),
	}
}

func (s *Service) finish(
	ctx context.Context,
	logger *slog.Logger,
	category deferral.Category,
	amounts currency.TradeAmounts,
	results []Result,
	notes []string,
) *Assessment {
	a := &Assessment{
		ID:       uuid.New(),
		Category: category,
		Amounts:  amounts,
		Results:  results,
		Notes:    notes,
	}
	logger = logger.With("assessment_id", a.ID)
	for _, r := range results {
		attrs := []any{"regime", r.Regime, "variant", r.Variant, "label", r.Label.Text}
		if r.Label.IsSentinel() {
			logger.WarnContext(ctx, "Deferral not determined", append(attrs, "error", r.Label.Err())...)
			continue
		}
		logger.DebugContext(ctx, "Deferral determined", attrs...)
	}
	logger.InfoContext(ctx, "Trade assessed", "results", len(results))
	if s.store != nil {
		s.store.Set(ctx, a.ID.String(), a, s.ttl)
	}
	return a
}
