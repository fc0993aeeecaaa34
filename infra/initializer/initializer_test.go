package initializer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overrideRates = `eur:
  EUR: "1"
  USD: "0.9"
  GBP: "1.2"
  PLN: "0.23"
  HUF: "0.0025"
  CZK: "0.04"
  RON: "0.2"
  NOK: "0.09"
  DKK: "0.13"
  SEK: "0.09"
  ISK: "0.007"
  BGN: "0.51"
  CHF: "1.05"
  CAD: "0.68"
  JPY: "0.006"
gbp:
  EUR: "0.84"
  USD: "0.75"
  GBP: "1"
  PLN: "0.19"
  HUF: "0.002"
  CZK: "0.034"
  RON: "0.17"
  NOK: "0.075"
  DKK: "0.11"
  SEK: "0.075"
  ISK: "0.006"
  BGN: "0.43"
  CHF: "0.88"
  CAD: "0.57"
  JPY: "0.005"
`

func testConfig() *config.App {
	return &config.App{
		Env:   "test",
		Log:   &config.Log{Format: "text", TimeFormat: "15:04:05"},
		Rates: &config.Rates{},
	}
}

func TestInitializeDependencies_Defaults(t *testing.T) {
	deps, err := InitializeDependencies(testConfig())
	require.NoError(t, err)

	assert.Same(t, currency.Default, deps.Normalizer)
	assert.Len(t, deps.CurrencyMeta, 15)
	assert.NotNil(t, deps.Logger)
	assert.Nil(t, deps.Assessments)
}

func TestInitializeDependencies_AssessmentCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache = &config.AssessmentCache{TTL: time.Minute}

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	require.NotNil(t, deps.Assessments)

	_, ok := deps.Assessments.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestInitializeDependencies_BadRedisURL(t *testing.T) {
	cfg := testConfig()
	cfg.Cache = &config.AssessmentCache{TTL: time.Minute, RedisURL: "http://nope"}

	_, err := InitializeDependencies(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create assessment cache")
}

func TestInitializeDependencies_RatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideRates), 0o600))
	cfg := testConfig()
	cfg.Rates.File = path

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)

	assert.Equal(t, "0.9", deps.Normalizer.EUR().Rate("USD").String())
	assert.Equal(t, "0.75", deps.Normalizer.GBP().Rate("USD").String())
}

func TestInitializeDependencies_BadRatesFile(t *testing.T) {
	cfg := testConfig()
	cfg.Rates.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := InitializeDependencies(cfg)
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, &config.Log{Format: "json", Prefix: "[test]"})

	logger.Info("Trade assessed", "results", 2)
	out := buf.String()
	assert.Contains(t, out, "Trade assessed")
	assert.Contains(t, out, "results")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), out)
}
