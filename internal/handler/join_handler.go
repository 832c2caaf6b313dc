package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/internal/service"
	"github.com/skghosh/socialdev-backend/pkg/utils"
)

type JoinHandler struct {
	joinService *service.JoinService
	validator   *utils.Validator
}

func NewJoinHandler(joinService *service.JoinService, validator *utils.Validator) *JoinHandler {
	return &JoinHandler{
		joinService: joinService,
		validator:   validator,
	}
}

func (h *JoinHandler) JoinEvent(c *fiber.Ctx) error {
	var req models.JoinEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	principal, ok := getPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	record, err := h.joinService.JoinEvent(principal, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyJoined):
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("You have already joined this event"))
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		case errors.Is(err, service.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid amount"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to join event"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(record, "Successfully joined the event!"))
}

func (h *JoinHandler) GetJoinedEvents(c *fiber.Ctx) error {
	email := c.Params("email")

	principal, ok := getPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	joined, err := h.joinService.GetJoinedEvents(email, principal)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You can only view your own joined events"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch joined events"))
	}

	return c.JSON(models.SuccessResponse(joined, ""))
}

func (h *JoinHandler) CheckMembership(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Query("eventId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email is required"))
	}

	isJoined, err := h.joinService.CheckMembership(uint(eventID), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to check membership"))
	}

	return c.JSON(models.MembershipResponse{IsJoined: isJoined})
}

func (h *JoinHandler) GetRecentJoins(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	joins, err := h.joinService.GetRecentJoins(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch recent joins"))
	}

	return c.JSON(models.SuccessResponse(joins, ""))
}

func (h *JoinHandler) GetAllJoins(c *fiber.Ctx) error {
	joins, err := h.joinService.GetAllJoins()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch joined events"))
	}

	return c.JSON(models.SuccessResponse(joins, ""))
}

func (h *JoinHandler) GetDonations(c *fiber.Ctx) error {
	donations, err := h.joinService.GetDonations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch donations"))
	}

	return c.JSON(models.SuccessResponse(donations, ""))
}

func (h *JoinHandler) UpdateJoinStatus(c *fiber.Ctx) error {
	joinID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid join record ID"))
	}

	var req models.UpdateJoinStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.joinService.UpdateJoinStatus(uint(joinID), req.Status); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Join record not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update join record"))
	}

	return c.JSON(models.SuccessResponse(nil, "Join record updated successfully"))
}

func (h *JoinHandler) DeleteJoin(c *fiber.Ctx) error {
	joinID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid join record ID"))
	}

	if err := h.joinService.DeleteJoin(uint(joinID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Join record not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete join record"))
	}

	return c.JSON(models.SuccessResponse(nil, "Join record deleted successfully"))
}
