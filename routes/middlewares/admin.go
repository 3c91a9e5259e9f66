package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/stockapi/controllers/helpers"
)

func AdminVaildator(c *fiber.Ctx) error {
	CurrentUser := GetCurrentUser(c)

	if CurrentUser == nil || (CurrentUser.Role != "admin" && CurrentUser.Role != "superadmin") {
		return c.Status(403).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return c.Next()
}
