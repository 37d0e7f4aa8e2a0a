package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"dispatch-backend/config"
	"dispatch-backend/constants"
	"dispatch-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWT{
			Secret: "middleware-test-secret",
			TTL:    time.Hour,
		},
	}
}

func whoami(c *fiber.Ctx) error {
	authUser := GetAuthUser(c)
	if authUser == nil {
		return c.JSON(fiber.Map{"userId": 0, "role": ""})
	}
	return c.JSON(fiber.Map{"userId": authUser.UserID, "role": authUser.Role})
}

func TestRequireAuth(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/me", RequireAuth(cfg), whoami)

	token, err := utils.IssueToken(cfg, 42, constants.RoleDispatcher)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not a bearer", "Basic abc123", fiber.StatusUnauthorized},
		{"missing token part", "Bearer", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + token, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.TTL = -time.Minute
	token, err := utils.IssueToken(cfg, 42, constants.RoleClient)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", RequireAuth(cfg), whoami)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthStoresIdentity(t *testing.T) {
	cfg := testConfig()
	var seen *utils.AuthUser

	app := fiber.New()
	app.Get("/me", RequireAuth(cfg), func(c *fiber.Ctx) error {
		seen = GetAuthUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	token, err := utils.IssueToken(cfg, 7, constants.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, seen)
	assert.Equal(t, uint(7), seen.UserID)
	assert.Equal(t, constants.RoleAdmin, seen.Role)
}

func TestOptionalAuth(t *testing.T) {
	cfg := testConfig()
	var seen *utils.AuthUser

	app := fiber.New()
	app.Patch("/thing", OptionalAuth(cfg), func(c *fiber.Ctx) error {
		seen = GetAuthUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	// No header: the request still goes through, anonymously.
	resp, err := app.Test(httptest.NewRequest("PATCH", "/thing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, seen)

	// Garbage token: also anonymous rather than rejected.
	req := httptest.NewRequest("PATCH", "/thing", nil)
	req.Header.Set("Authorization", "Bearer broken")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, seen)

	token, err := utils.IssueToken(cfg, 9, constants.RoleClient)
	require.NoError(t, err)
	req = httptest.NewRequest("PATCH", "/thing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, seen)
	assert.Equal(t, uint(9), seen.UserID)
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/admin", RequireAuth(cfg), RequireRole(constants.RoleAdmin), whoami)

	adminToken, err := utils.IssueToken(cfg, 1, constants.RoleAdmin)
	require.NoError(t, err)
	clientToken, err := utils.IssueToken(cfg, 2, constants.RoleClient)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
