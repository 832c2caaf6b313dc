package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/internal/service"
	jwtPkg "github.com/skghosh/socialdev-backend/pkg/jwt"
)

const PrincipalKey = "principal"

// Protected verifies the bearer token and resolves the caller's stored
// role and status into a Principal for downstream handlers.
func Protected(userService *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email in token"))
		}

		principal := models.Principal{
			Email:  email,
			Role:   models.RoleUser,
			Status: models.StatusActive,
		}
		if userIDFloat, ok := claims["user_id"].(float64); ok {
			principal.UserID = uint(userIDFloat)
		}

		// A verified identity with no stored row stays a plain active user.
		role, err := userService.GetRole(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to resolve user role"))
		}
		principal.Role = role.Role
		principal.Status = role.Status

		c.Locals(PrincipalKey, principal)

		return c.Next()
	}
}

// AdminOnly gates a route to admin principals. Must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals(PrincipalKey).(models.Principal)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
		}

		if !principal.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Admin access required"))
		}

		return c.Next()
	}
}
