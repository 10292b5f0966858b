package controllers

import (
	"psle-tutor-backend/config"
	"psle-tutor-backend/token"
	"psle-tutor-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHistoryController returns the session's answered questions, newest
// first, optionally filtered by topic or difficulty.
func (qc *QuizController) QuizHistoryController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	attempts, total, err := qc.QuizRepo.GetFilteredAttempts(sessionPayload.SessionID, params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch quiz history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch quiz history",
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, attempts, total, params))
}
