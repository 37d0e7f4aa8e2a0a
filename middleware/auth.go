package middleware

import (
	"strings"

	"dispatch-backend/config"
	"dispatch-backend/types"
	"dispatch-backend/utils"

	"github.com/gofiber/fiber/v2"
)

const authUserKey = "authUser"

// RequireAuth verifies the Authorization: Bearer header and stores the
// resolved identity in the request context.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authUser, errMsg := parseBearer(cfg, c)
		if authUser == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: errMsg,
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(authUserKey, authUser)
		return c.Next()
	}
}

// OptionalAuth resolves a bearer identity when one is present but lets the
// request through either way. Used on routes that only record the actor.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authUser, _ := parseBearer(cfg, c); authUser != nil {
			c.Locals(authUserKey, authUser)
		}
		return c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authUser := GetAuthUser(c)
		if authUser == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		for _, role := range roles {
			if authUser.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "You do not have permission to perform this action",
			Status:  fiber.StatusForbidden,
		})
	}
}

// GetAuthUser returns the identity stored by RequireAuth/OptionalAuth, or nil.
func GetAuthUser(c *fiber.Ctx) *utils.AuthUser {
	authUser, ok := c.Locals(authUserKey).(*utils.AuthUser)
	if !ok {
		return nil
	}
	return authUser
}

func parseBearer(cfg *config.Config, c *fiber.Ctx) (*utils.AuthUser, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "Authorization token required"
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, "Invalid authorization header format"
	}

	authUser, err := utils.ParseToken(cfg, tokenParts[1])
	if err != nil {
		return nil, "Invalid or expired token"
	}

	return authUser, ""
}
