package deferral

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/google/uuid"
)

// ErrUnknownCategory is returned for a trade whose bond category has no
// regime.
var ErrUnknownCategory = errors.New("unknown bond category")

// ErrAssessmentNotFound is returned by Get for an unknown or expired ID.
var ErrAssessmentNotFound = errors.New("assessment not found")

// Store keeps recent assessments for lookup by ID.
type Store interface {
	Get(ctx context.Context, key string) (*Assessment, bool)
	Set(ctx context.Context, key string, a *Assessment, ttl time.Duration)
}

// Regime identifies the rulebook a result was computed under.
type Regime string

const (
	RegimeUK Regime = "UK"
	RegimeEU Regime = "EU"
)

// Result is the outcome of one rule variant.
type Result struct {
	Regime   Regime         `json:"regime"`
	Variant  string         `json:"variant"`
	Currency string         `json:"currency"`
	Label    deferral.Label `json:"label"`
}

// Assessment is every result computed for one trade.
type Assessment struct {
	ID       uuid.UUID             `json:"id"`
	Category deferral.Category     `json:"category"`
	Amounts  currency.TradeAmounts `json:"amounts"`
	Results  []Result              `json:"results"`
	Notes    []string              `json:"notes,omitempty"`
}

// Incomplete reports whether any result asks for missing input.
func (a *Assessment) Incomplete() bool {
	for _, r := range a.Results {
		if r.Label.Tier == deferral.TierIncomplete {
			return true
		}
	}
	return false
}
