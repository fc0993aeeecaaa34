package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/transparency/infra/cache"
	fixturescurrency "github.com/amirasaad/transparency/internal/fixtures/currency"
	"github.com/amirasaad/transparency/pkg/app"
	"github.com/amirasaad/transparency/pkg/config"
	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/amirasaad/transparency/webapi"
	"github.com/amirasaad/transparency/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// APITestSuite provides a test suite with the full HTTP stack over the
// built-in rate tables and embedded currency metadata.
type APITestSuite struct {
	suite.Suite
	App *fiber.App
	Cfg *config.App
}

// TestConfig returns a configuration suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Rates:     &config.Rates{},
		Cache:     &config.AssessmentCache{TTL: time.Minute},
	}
}

// NewTestApp builds the fiber app for cfg with logging discarded.
func NewTestApp(cfg *config.App) (*fiber.App, error) {
	metas, err := fixturescurrency.LoadCurrencyMetaCSV("")
	if err != nil {
		return nil, err
	}
	a := app.New(&app.Deps{
		Normalizer:   currency.Default,
		CurrencyMeta: metas,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Assessments:  cache.NewMemoryCache[*deferral.Assessment](0),
	}, cfg)
	return webapi.SetupApp(a), nil
}

// SetupTest builds a fresh app so rate limits do not leak between tests.
func (s *APITestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = TestConfig()
	}
	var err error
	s.App, err = NewTestApp(s.Cfg)
	s.Require().NoError(err)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *APITestSuite) MakeRequest(method, path, body string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body)
}

// MakeRequestWithApp sends one request through app.
func MakeRequestWithApp(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// DecodeResponse decodes a success envelope and closes the body.
func (s *APITestSuite) DecodeResponse(resp *http.Response, data any) common.Response {
	defer resp.Body.Close() //nolint:errcheck
	out := common.Response{Data: data}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DecodeProblem decodes a problem details body and closes it.
func (s *APITestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint:errcheck
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}
