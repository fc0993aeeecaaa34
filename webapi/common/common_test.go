package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/transparency/pkg/money"
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/amirasaad/transparency/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, fiber.StatusBadRequest},
		{"fiber error", fiber.ErrNotFound, fiber.StatusNotFound},
		{"unknown category", fmt.Errorf("assess: %w", deferralsvc.ErrUnknownCategory), fiber.StatusBadRequest},
		{"currency not found", currencysvc.ErrCurrencyNotFound, fiber.StatusNotFound},
		{"assessment not found", fmt.Errorf("get: %w", deferralsvc.ErrAssessmentNotFound), fiber.StatusNotFound},
		{"invalid currency", money.ErrInvalidCurrency, fiber.StatusUnprocessableEntity},
		{"unsupported currency", money.ErrUnsupportedCurrency, fiber.StatusUnprocessableEntity},
		{"unexpected", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, common.ErrorToStatusCode(tt.err))
		})
	}
}

type sizeRequest struct {
	Size decimal.NullDecimal `json:"size" validate:"omitempty,gte=0"`
	Kind string              `json:"kind" validate:"required,oneof=a b"`
}

func newBindApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[sizeRequest](c)
		if input == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", fiber.Map{"valid": input.Size.Valid})
	})
	return app
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"size": 10, "kind": "a"}`, fiber.StatusOK},
		{"size omitted", `{"kind": "b"}`, fiber.StatusOK},
		{"size null", `{"size": null, "kind": "b"}`, fiber.StatusOK},
		{"negative size", `{"size": -1, "kind": "a"}`, fiber.StatusBadRequest},
		{"bad enum", `{"kind": "c"}`, fiber.StatusBadRequest},
		{"malformed", `{"kind":`, fiber.StatusBadRequest},
	}
	app := newBindApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status != fiber.StatusOK {
				assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"size": -5, "kind": "z"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newBindApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var pd struct {
		Title  string            `json:"title"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Validation failed", pd.Title)
	assert.Equal(t, map[string]string{"Size": "gte", "Kind": "oneof"}, pd.Errors)
}
