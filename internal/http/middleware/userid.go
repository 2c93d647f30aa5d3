package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserIDHeader carries the authenticated user id, set by the auth gateway.
	UserIDHeader = "X-User-Id"
	// UserIDLocalKey is the locals key holding the parsed user id.
	UserIDLocalKey = "user_id"
)

// RequireUserID rejects requests without a positive numeric X-User-Id with 401.
// The bearer token itself is verified upstream.
func RequireUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserIDHeader)
		id, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil || id <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"request_id": GetRequestID(c),
				"error": fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "authentication required",
				},
			})
		}
		c.Locals(UserIDLocalKey, id)
		return c.Next()
	}
}

// GetUserID returns the id stored by RequireUserID.
func GetUserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(UserIDLocalKey).(int64)
	return id, ok
}
