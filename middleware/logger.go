package middleware

import (
	"time"

	"dispatch-backend/logger"
	"dispatch-backend/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger persists every request/response pair through the async logger.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			RequestBody:  string(c.Body()),
			ResponseBody: string(c.Response().Body()),
			StatusCode:   c.Response().StatusCode(),
			CreatedAt:    time.Now(),
		})

		return err
	}
}
