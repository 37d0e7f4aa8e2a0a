package addressbook

import (
	"errors"
	"strings"

	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	addressbookModel "dispatch-backend/models/addressbook"
	userModel "dispatch-backend/models/user"
	"dispatch-backend/types"
	addressbookTypes "dispatch-backend/types/addressbook"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddressBookController handles the reusable saved-place CRUD.
type AddressBookController struct {
	db *gorm.DB
}

func NewAddressBookController(db *gorm.DB) *AddressBookController {
	return &AddressBookController{db: db}
}

// List returns entries visible to the requester. Admins see everything,
// optionally narrowed to one company; everyone else sees their company's
// entries, or only their own when they have no company.
func (h *AddressBookController) List(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var me userModel.User
	if err := h.db.First(&me, authUser.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Signed-in account no longer exists",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to load signed-in user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list address book",
			Status:  fiber.StatusInternalServerError,
		})
	}

	query := h.db.Model(&addressbookModel.AddressBook{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		query = query.Where(
			h.db.Where("place_name ILIKE ?", pattern).
				Or("address ILIKE ?", pattern).
				Or("address_detail ILIKE ?", pattern).
				Or("contact_name ILIKE ?", pattern).
				Or("contact_phone ILIKE ?", pattern),
		)
	}

	if me.Role == userModel.RoleAdmin {
		if companyFilter := strings.TrimSpace(c.Query("companyName")); companyFilter != "" {
			query = query.Where(
				"user_id IN (?)",
				h.db.Model(&userModel.User{}).Select("id").Where("company_name = ?", companyFilter),
			)
		}
	} else if me.CompanyName != nil && strings.TrimSpace(*me.CompanyName) != "" {
		query = query.Where(
			"user_id IN (?)",
			h.db.Model(&userModel.User{}).Select("id").Where("company_name = ?", *me.CompanyName),
		)
	} else {
		query = query.Where("user_id = ?", me.ID)
	}

	var entries []addressbookModel.AddressBook
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		logger.Error("Failed to list address book entries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list address book",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Address book entries",
		Status:  fiber.StatusOK,
		Data:    entries,
	})
}

// Create stores a new entry owned by the signed-in user.
func (h *AddressBookController) Create(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req addressbookTypes.CreateRequest
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

	entryType, _ := addressbookModel.ParseType(req.Type)
	entry := addressbookModel.AddressBook{
		UserID:        authUser.UserID,
		PlaceName:     req.PlaceName,
		Address:       req.Address,
		AddressDetail: req.AddressDetail,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		Type:          entryType,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		logger.Error("Failed to create address book entry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create address book entry",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Address book entry created",
		Status:  fiber.StatusCreated,
		Data:    entry,
	})
}

// Update merges the supplied fields into an entry. Owner only.
func (h *AddressBookController) Update(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid address book id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req addressbookTypes.UpdateRequest
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

	entry, errResp := h.findOwnedEntry(c, uint(id), authUser.UserID)
	if entry == nil {
		return errResp
	}

	if req.PlaceName != nil {
		entry.PlaceName = *req.PlaceName
	}
	if req.Address != nil {
		entry.Address = *req.Address
	}
	if req.AddressDetail != nil {
		entry.AddressDetail = req.AddressDetail
	}
	if req.ContactName != nil {
		entry.ContactName = req.ContactName
	}
	if req.ContactPhone != nil {
		entry.ContactPhone = req.ContactPhone
	}
	if req.Type != nil {
		entryType, _ := addressbookModel.ParseType(*req.Type)
		entry.Type = entryType
	}

	if err := h.db.Save(entry).Error; err != nil {
		logger.Error("Failed to update address book entry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update address book entry",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Address book entry updated",
		Status:  fiber.StatusOK,
		Data:    entry,
	})
}

// Delete permanently removes an entry. Owner only.
func (h *AddressBookController) Delete(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid address book id",
			Status:  fiber.StatusBadRequest,
		})
	}

	entry, errResp := h.findOwnedEntry(c, uint(id), authUser.UserID)
	if entry == nil {
		return errResp
	}

	if err := h.db.Delete(entry).Error; err != nil {
		logger.Error("Failed to delete address book entry", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete address book entry",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Companies returns the distinct non-null company names, ascending. Admin only.
func (h *AddressBookController) Companies(c *fiber.Ctx) error {
	var companies []string
	err := h.db.Model(&userModel.User{}).
		Distinct("company_name").
		Where("company_name IS NOT NULL").
		Order("company_name ASC").
		Pluck("company_name", &companies).Error
	if err != nil {
		logger.Error("Failed to list companies", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to list companies",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Companies",
		Status:  fiber.StatusOK,
		Data:    companies,
	})
}

// findOwnedEntry loads an entry and enforces the owner-only rule. On failure
// it writes the error response and returns nil.
func (h *AddressBookController) findOwnedEntry(c *fiber.Ctx, id, requesterID uint) (*addressbookModel.AddressBook, error) {
	var entry addressbookModel.AddressBook
	if err := h.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Address book entry not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load address book entry", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to load address book entry",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if entry.UserID != requesterID {
		return nil, c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "You do not have permission to modify this entry",
			Status:  fiber.StatusForbidden,
		})
	}

	return &entry, nil
}
