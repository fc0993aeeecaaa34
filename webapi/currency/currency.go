package currency

import (
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	"github.com/amirasaad/transparency/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for currency-related operations.
// Sets up endpoints for listing, searching and normalizing.
func Routes(app *fiber.App, currencySvc *currencysvc.Service) {
	currencyGroup := app.Group("/api/currencies")

	currencyGroup.Get("/", ListCurrencies(currencySvc))
	currencyGroup.Get("/supported", ListSupportedCurrencies(currencySvc))
	currencyGroup.Get("/search", SearchCurrencies(currencySvc))
	currencyGroup.Post("/normalize", Normalize(currencySvc))
	currencyGroup.Get("/:code", GetCurrency(currencySvc))
}

// ListCurrencies returns a Fiber handler for listing all supported currencies.
// @Summary List all currencies
// @Description Get every supported issue currency with its EUR and GBP conversion rate
// @Tags currencies
// @Accept json
// @Produce json
// @Success 200 {object} common.Response{data=[]CurrencyResponse}
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/currencies [get]
func ListCurrencies(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		currencies := currencySvc.ListAll(c.UserContext())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", ToResponses(currencies))
	}
}

// ListSupportedCurrencies returns all supported currency codes
// @Summary List supported currencies
// @Description Get all supported currency codes
// @Tags currencies
// @Accept json
// @Produce json
// @Success 200 {object} common.Response{data=[]string}
// @Router /api/currencies/supported [get]
func ListSupportedCurrencies(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes := currencySvc.ListSupported(c.UserContext())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Supported currencies fetched successfully", codes)
	}
}

// GetCurrency returns currency information by code
// @Summary Get currency by code
// @Description Get currency information by ISO 4217 code
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code (e.g., USD, EUR)"
// @Success 200 {object} common.Response{data=CurrencyResponse}
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/currencies/{code} [get]
func GetCurrency(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listing, err := currencySvc.Get(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid currency code", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", ToResponse(listing))
	}
}

// SearchCurrencies searches for currencies by code, name or country
// @Summary Search currencies
// @Description Search for currencies by code, name or country
// @Tags currencies
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} common.Response{data=[]CurrencyResponse}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/currencies/search [get]
func SearchCurrencies(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return common.ProblemDetailsJSON(c, "Search query is required", nil, "Missing q parameter")
		}
		found := currencySvc.Search(c.UserContext(), query)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", ToResponses(found))
	}
}

// Normalize converts an amount to EUR and GBP
// @Summary Normalize an amount
// @Description Convert an amount in a supported currency to EUR and GBP with the static rate tables
// @Tags currencies
// @Accept json
// @Produce json
// @Param request body NormalizeRequest true "Amount"
// @Success 200 {object} common.Response{data=NormalizeResponse}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/currencies/normalize [post]
func Normalize(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NormalizeRequest](c)
		if input == nil {
			return err // error response already written
		}
		if !input.Amount.Valid {
			return common.ProblemDetailsJSON(c, "Validation failed", ErrAmountRequired, fiber.StatusBadRequest)
		}
		out := currencySvc.Normalize(c.UserContext(), input.Amount.Decimal, input.code())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Amount normalized", NormalizeResponse{
			Amount:   input.Amount.Decimal.String(),
			Currency: input.Currency,
			EUR:      out.EUR.String(),
			GBP:      out.GBP.String(),
		})
	}
}
