package deferral

import (
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/amirasaad/transparency/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers HTTP routes for deferral assessments.
func Routes(app *fiber.App, deferralSvc *deferralsvc.Service) {
	group := app.Group("/api/deferrals")
	group.Post("/", Assess(deferralSvc))
	group.Post("/corporate-covered", AssessCorporateCovered(deferralSvc))
	group.Get("/:id", Get(deferralSvc))
}

// Get returns a Fiber handler fetching a recent assessment by ID.
// @Summary Get an assessment
// @Description Fetch a previously computed assessment while it is still cached
// @Tags deferrals
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} common.Response{data=AssessmentResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /api/deferrals/{id} [get]
func Get(deferralSvc *deferralsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid assessment ID", err, fiber.StatusBadRequest)
		}
		a, err := deferralSvc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Assessment not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assessment found", ToResponse(a))
	}
}

// Assess returns a Fiber handler assessing one trade.
// @Summary Assess a trade
// @Description Compute the UK and EU post-trade transparency deferral for a bond trade
// @Tags deferrals
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Trade"
// @Success 200 {object} common.Response{data=AssessmentResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/deferrals [post]
func Assess(deferralSvc *deferralsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TradeRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := deferralSvc.Assess(c.UserContext(), input.ToInput())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to assess trade", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trade assessed", ToResponse(a))
	}
}

// AssessCorporateCovered returns a Fiber handler for the combined corporate
// and covered form.
// @Summary Assess a corporate or covered bond trade
// @Description Compute the UK corporate/covered deferral and both EU corporate and covered deferrals
// @Tags deferrals
// @Accept json
// @Produce json
// @Param request body CorporateCoveredRequest true "Trade"
// @Success 200 {object} common.Response{data=AssessmentResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/deferrals/corporate-covered [post]
func AssessCorporateCovered(deferralSvc *deferralsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CorporateCoveredRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := deferralSvc.AssessCorporateCovered(c.UserContext(), input.ToInput())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to assess trade", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trade assessed", ToResponse(a))
	}
}
