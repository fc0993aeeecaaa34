package currency

import (
	"fmt"
	"os"

	"github.com/amirasaad/transparency/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ratesFile is the on-disk layout of a rate override:
//
//	eur:
//	  EUR: "1"
//	  USD: "0.9"
//	gbp:
//	  GBP: "1"
type ratesFile struct {
	EUR map[string]string `yaml:"eur"`
	GBP map[string]string `yaml:"gbp"`
}

// LoadRateTables reads a YAML rate override and returns a Normalizer over it.
// Both tables must satisfy the table invariant.
func LoadRateTables(path string) (*Normalizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	return ParseRateTables(data)
}

// ParseRateTables decodes a YAML rate override.
func ParseRateTables(data []byte) (*Normalizer, error) {
	var f ratesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rates file: %w", err)
	}
	eur, err := parseTable(money.EUR, f.EUR)
	if err != nil {
		return nil, err
	}
	gbp, err := parseTable(money.GBP, f.GBP)
	if err != nil {
		return nil, err
	}
	return NewNormalizer(eur, gbp), nil
}

func parseTable(home money.Code, raw map[string]string) (RateTable, error) {
	rates := make(map[money.Code]decimal.Decimal, len(raw))
	for code, value := range raw {
		c, err := money.ParseCode(code)
		if err != nil {
			return RateTable{}, fmt.Errorf("%w: %s table: %w", ErrInvalidRateTable, home, err)
		}
		r, err := decimal.NewFromString(value)
		if err != nil {
			return RateTable{}, fmt.Errorf("%w: %s table rate for %s: %w", ErrInvalidRateTable, home, c, err)
		}
		rates[c] = r
	}
	return NewRateTable(home, rates)
}
