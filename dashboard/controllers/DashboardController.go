package controllers

import (
	"psle-tutor-backend/config"
	"psle-tutor-backend/dashboard/repositories"
	"psle-tutor-backend/token"
	"psle-tutor-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardRepo repositories.DashboardRepository
}

// SummaryController returns the session's headline quiz figures.
func (dc *DashboardController) SummaryController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	summary, err := dc.DashboardRepo.GetSessionSummary(sessionPayload.SessionID)
	if err != nil {
		config.Logger.Error("Failed to build dashboard summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build dashboard summary",
		})
	}

	return c.JSON(fiber.Map{
		"summary": summary,
	})
}

// TopicStatsController returns per-topic attempted/correct/accuracy rows.
func (dc *DashboardController) TopicStatsController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	stats, err := dc.DashboardRepo.GetTopicStats(sessionPayload.SessionID)
	if err != nil {
		config.Logger.Error("Failed to build topic stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build topic stats",
		})
	}

	return c.JSON(fiber.Map{
		"topics": stats,
	})
}

// HistoryController pages through the session's attempt history, newest first.
func (dc *DashboardController) HistoryController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	attempts, total, err := dc.DashboardRepo.GetAttemptHistory(sessionPayload.SessionID, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch attempt history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attempt history",
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, attempts, total, params))
}
