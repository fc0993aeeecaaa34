// Package common holds the response envelope, RFC 9457 problem details and
// request binding shared by the HTTP handlers.
package common

import (
	"errors"
	"reflect"

	"github.com/amirasaad/transparency/pkg/money"
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes data wrapped in the standard envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The optional args
// override the defaults: a string sets the detail, an int sets the status.
// Without an int the status is derived from err.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   ErrorToStatusCode(err),
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			pd.Errors = fieldErrors(verrs)
		}
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			pd.Detail = v
		case int:
			pd.Status = v
		}
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes. A
// nil error is a client mistake.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &verrs):
		return fiber.StatusBadRequest
	case errors.Is(err, deferralsvc.ErrUnknownCategory):
		return fiber.StatusBadRequest
	case errors.Is(err, currencysvc.ErrCurrencyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, deferralsvc.ErrAssessmentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, money.ErrInvalidCurrency):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrUnsupportedCurrency):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// fieldErrors flattens validation failures to field -> failed tag.
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Validate decimals by value so numeric tags such as gte apply; absent
	// values are nil and satisfy omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch d := field.Interface().(type) {
		case decimal.NullDecimal:
			if !d.Valid {
				return nil
			}
			return d.Decimal.InexactFloat64()
		case decimal.Decimal:
			return d.InexactFloat64()
		}
		return nil
	}, decimal.NullDecimal{}, decimal.Decimal{})
	return v
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
