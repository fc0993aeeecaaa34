package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrCurrencyNotFound is returned when a code has no listing.
var ErrCurrencyNotFound = errors.New("currency not found")

// ---- Listing ----

// Listing is a supported currency with its conversion rates.
type Listing struct {
	currency.Meta
	RateEUR decimal.Decimal `json:"rate_eur"`
	RateGBP decimal.Decimal `json:"rate_gbp"`
}

// Service provides business logic for currency operations
type Service struct {
	metas      []currency.Meta
	normalizer *currency.Normalizer
	logger     *slog.Logger
}

// New creates a new currency service
func New(
	metas []currency.Meta,
	normalizer *currency.Normalizer,
	logger *slog.Logger,
) *Service {
	if normalizer == nil {
		normalizer = currency.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		metas:      metas,
		normalizer: normalizer,
		logger:     logger.With("service", "Currency"),
	}
}

// Get retrieves currency information by code
func (s *Service) Get(ctx context.Context, code string) (*Listing, error) {
	c, err := money.ParseCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	for _, m := range s.metas {
		if m.Code == c {
			l := s.listing(m)
			return &l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, c)
}

// ListSupported returns all supported currency codes
func (s *Service) ListSupported(ctx context.Context) []string {
	codes := make([]string, 0, len(money.Supported))
	for _, c := range money.Supported {
		codes = append(codes, c.String())
	}
	return codes
}

// ListAll returns every listed currency with its rates. Supported codes
// missing from the metadata are listed by code only.
func (s *Service) ListAll(ctx context.Context) []Listing {
	byCode := make(map[money.Code]currency.Meta, len(s.metas))
	for _, m := range s.metas {
		byCode[m.Code] = m
	}

	out := make([]Listing, 0, len(money.Supported))
	for _, c := range money.Supported {
		m, ok := byCode[c]
		if !ok {
			s.logger.Warn("Currency metadata missing", "code", c)
			m = currency.Meta{Code: c, Name: c.String()}
		}
		out = append(out, s.listing(m))
	}
	return out
}

// Search returns listings whose code, name or country contains query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) []Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Listing
	for _, l := range s.ListAll(ctx) {
		if strings.Contains(strings.ToLower(l.Code.String()), q) ||
			strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Country), q) {
			out = append(out, l)
		}
	}
	return out
}

// Normalize converts amount, denominated in code, to EUR and GBP.
func (s *Service) Normalize(ctx context.Context, amount decimal.Decimal, code money.Code) currency.Amounts {
	out := s.normalizer.Normalize(amount, code)
	s.logger.DebugContext(ctx, "Amount normalized",
		"amount", amount, "currency", code, "eur", out.EUR, "gbp", out.GBP)
	return out
}

func (s *Service) listing(m currency.Meta) Listing {
	return Listing{
		Meta:    m,
		RateEUR: s.normalizer.EUR().Rate(m.Code),
		RateGBP: s.normalizer.GBP().Rate(m.Code),
	}
}
