package distance

import (
	"dispatch-backend/logger"
	distanceService "dispatch-backend/services/distance"
	"dispatch-backend/types"
	distanceTypes "dispatch-backend/types/distance"

	"github.com/gofiber/fiber/v2"
)

// DistanceController exposes the address-pair distance estimate.
type DistanceController struct {
	estimator *distanceService.Estimator
}

func NewDistanceController(estimator *distanceService.Estimator) *DistanceController {
	return &DistanceController{estimator: estimator}
}

// Estimate resolves two address strings to a driving distance and duration.
// Upstream failures pass their detail through so the client can surface it.
func (h *DistanceController) Estimate(c *fiber.Ctx) error {
	var req distanceTypes.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	result, err := h.estimator.Estimate(req.StartAddress, req.GoalAddress)
	if err != nil {
		logger.Error("Distance estimation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to estimate distance",
			Status:  fiber.StatusInternalServerError,
			Detail:  err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
