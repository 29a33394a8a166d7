package helper

import "github.com/gofiber/fiber/v2"

// JsonPipeError: bentuk error khusus endpoint pipeline respondent
// (survey-live, thanks-index). Endpoint ini dipanggil langsung oleh provider
// survey / client script, kontraknya body compact {"error": "..."} — bukan
// envelope admin.
func JsonPipeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
