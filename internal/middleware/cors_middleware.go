package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PermissiveCORS marks every response of the route as readable from any
// origin and answers preflight requests itself with an empty JSON object.
func PermissiveCORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{})
	}
}

// MethodNotAllowed is registered after a route's POST handler to catch
// every other method.
func MethodNotAllowed(allow ...string) fiber.Handler {
	if len(allow) == 0 {
		allow = []string{fiber.MethodPost}
	}
	allowHeader := strings.Join(allow, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allowHeader)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Only POST requests are allowed.",
		})
	}
}
