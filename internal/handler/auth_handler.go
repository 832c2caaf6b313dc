package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/internal/service"
	"github.com/skghosh/socialdev-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Email already registered"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Registration failed"))
	}

	return c.JSON(models.SuccessResponse(resp, "Registered successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredential) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email or password"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Login failed"))
	}

	return c.JSON(models.SuccessResponse(resp, "Logged in successfully"))
}
