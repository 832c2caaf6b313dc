package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skghosh/socialdev-backend/internal/middleware"
	"github.com/skghosh/socialdev-backend/internal/models"
)

func getPrincipal(c *fiber.Ctx) (models.Principal, bool) {
	principal, ok := c.Locals(middleware.PrincipalKey).(models.Principal)
	return principal, ok
}
