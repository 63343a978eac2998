package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// parseBody decodes a JSON body; an empty body decodes as {}.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	return nil
}

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}
