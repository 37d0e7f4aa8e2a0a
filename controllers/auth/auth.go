package auth

import (
	"errors"
	"strings"

	"dispatch-backend/config"
	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	userModel "dispatch-backend/models/user"
	"dispatch-backend/types"
	authTypes "dispatch-backend/types/auth"
	"dispatch-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles signup, login and the password flows.
type AuthController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{db: db, cfg: cfg}
}

// Signup creates an account. The response never carries the password hash.
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req authTypes.SignupRequest
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

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        authTypes.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         userModel.RoleClient,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "An account with this email already exists",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("User signed up: " + newUser.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Account created",
		Status:  fiber.StatusCreated,
		Data:    newUser,
	})
}

// Login verifies the password and issues a 7-day bearer token. The failure
// message never says whether the email or the password was wrong.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
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

	var account userModel.User
	err := h.db.Where("email = ?", authTypes.NormalizeEmail(req.Email)).First(&account).Error
	if err != nil || !utils.CheckPassword(account.PasswordHash, req.Password) {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to look up user for login", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Email or password is incorrect",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := utils.IssueToken(h.cfg, account.ID, account.Role.String())
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to issue token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged in",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    account,
	})
}

// FindID looks up the emails registered under a name.
func (h *AuthController) FindID(c *fiber.Ctx) error {
	var req authTypes.FindIDRequest
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

	var accounts []userModel.User
	if err := h.db.Where("name = ?", req.Name).Find(&accounts).Error; err != nil {
		logger.Error("Failed to look up users by name", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to look up accounts",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if len(accounts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
			Message: "No account is registered under this name",
			Status:  fiber.StatusNotFound,
		})
	}

	found := make([]fiber.Map, 0, len(accounts))
	for _, account := range accounts {
		found = append(found, fiber.Map{
			"id":         account.ID,
			"email":      account.Email,
			"created_at": account.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Accounts found",
		Status:  fiber.StatusOK,
		Data:    found,
	})
}

// ResetPassword is the unauthenticated recovery path gated only by a
// matching name+email pair.
func (h *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authTypes.ResetPasswordRequest
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

	var account userModel.User
	err := h.db.Where("email = ?", authTypes.NormalizeEmail(req.Email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "No account with this email was found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to look up user for reset", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to reset password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if account.Name != req.Name {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Name does not match the account registered under this email",
			Status:  fiber.StatusBadRequest,
		})
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to reset password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Model(&account).Update("password_hash", hash).Error; err != nil {
		logger.Error("Failed to store new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to reset password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Password reset for " + account.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password changed, sign in with the new password",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"email": account.Email},
	})
}

// ChangePassword rehashes after verifying the current password.
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authentication required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req authTypes.ChangePasswordRequest
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

	var account userModel.User
	if err := h.db.First(&account, authUser.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Signed-in account no longer exists",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load signed-in user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to change password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !utils.CheckPassword(account.PasswordHash, req.CurrentPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Current password does not match",
			Status:  fiber.StatusBadRequest,
		})
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to change password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Model(&account).Update("password_hash", hash).Error; err != nil {
		logger.Error("Failed to store new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to change password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password changed",
		Status:  fiber.StatusOK,
	})
}
