package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) GetAdminStats(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "7"))

	stats, err := h.statsService.GetAdminStats(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch stats"))
	}

	return c.JSON(models.SuccessResponse(stats, ""))
}
