package request

import (
	"errors"
	"strconv"

	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	requestModel "dispatch-backend/models/request"
	"dispatch-backend/services/pricing"
	"dispatch-backend/services/request_event"
	"dispatch-backend/types"
	requestTypes "dispatch-backend/types/request"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestController handles dispatch request creation, listing and status
// changes.
type RequestController struct {
	db *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{db: db}
}

// Store creates a dispatch request for the signed-in user. Loading methods
// are validated case-insensitively; vehicle group and payment method pass
// through uppercased. A quote is filled in when a distance is supplied
// without one.
func (h *RequestController) Store(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req requestTypes.CreateRequest
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

	created := req.ToModel(authUser.UserID)

	if created.DistanceKm != nil && created.QuotedPrice == nil {
		quote := pricing.Quote(*created.DistanceKm, created.VehicleGroup, created.RequestType)
		created.QuotedPrice = &quote
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return request_event.RecordStatusChange(tx, created.ID, created.Status, strconv.FormatUint(uint64(authUser.UserID), 10))
	})
	if err != nil {
		logger.Error("Failed to create dispatch request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create dispatch request",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Dispatch request created",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// List returns a filtered, paginated summary page. The windowed fetch and the
// count run against the same predicate so total stays consistent with items.
func (h *RequestController) List(c *fiber.Ctx) error {
	q, err := requestTypes.ParseListQuery(
		c.Query("status"),
		c.Query("from"),
		c.Query("to"),
		c.Query("page"),
		c.Query("pageSize"),
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	filtered := h.db.Model(&requestModel.Request{})
	if q.Status != nil {
		filtered = filtered.Where("status = ?", *q.Status)
	}
	if q.From != nil {
		filtered = filtered.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		filtered = filtered.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count dispatch requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list dispatch requests",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var items []requestModel.Summary
	err = filtered.Session(&gorm.Session{}).
		Select("id", "pickup_place_name", "dropoff_place_name", "distance_km", "quoted_price", "status", "created_at").
		Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		logger.Error("Failed to list dispatch requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list dispatch requests",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dispatch requests",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"items":    items,
			"total":    total,
			"page":     q.Page,
			"pageSize": q.PageSize,
		},
	})
}

// Recent returns the signed-in user's latest requests, newest first.
func (h *RequestController) Recent(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	limit := requestTypes.ParseRecentLimit(c.Query("limit"))

	var items []requestModel.Summary
	err := h.db.Model(&requestModel.Request{}).
		Select("id", "pickup_place_name", "dropoff_place_name", "distance_km", "quoted_price", "status", "created_at").
		Where("created_by_id = ?", authUser.UserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		logger.Error("Failed to list recent dispatch requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list recent dispatch requests",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Recent dispatch requests",
		Status:  fiber.StatusOK,
		Data:    items,
	})
}

// Show returns the full record for one request.
func (h *RequestController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var found requestModel.Request
	if err := h.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Dispatch request not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load dispatch request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load dispatch request",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dispatch request",
		Status:  fiber.StatusOK,
		Data:    found,
	})
}

// UpdateStatus overwrites the status. Any valid status may replace any other;
// the overwrite and its audit event commit in one transaction.
func (h *RequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req requestTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "status is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	newStatus, ok := requestModel.ParseStatus(req.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "status is not a valid value: " + req.Status,
			Status:  fiber.StatusBadRequest,
		})
	}

	var found requestModel.Request
	if err := h.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Dispatch request not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load dispatch request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	changedBy := ""
	if authUser := middleware.GetAuthUser(c); authUser != nil {
		changedBy = strconv.FormatUint(uint64(authUser.UserID), 10)
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&found).Update("status", newStatus).Error; err != nil {
			return err
		}
		return request_event.RecordStatusChange(tx, found.ID, newStatus, changedBy)
	})
	if err != nil {
		logger.Error("Failed to update dispatch request status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Status updated",
		Status:  fiber.StatusOK,
		Data:    found,
	})
}
