package controllers

import (
	"psle-tutor-backend/config"
	quiz_services "psle-tutor-backend/quiz/services"
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EndSessionController struct {
	SessionController
	StateService *quiz_services.QuizStateService
}

// EndSession closes the session and drops its Redis counters. Attempt
// history stays in Postgres.
func (sc *EndSessionController) EndSession(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	if err := sc.SessionRepo.EndSession(sessionPayload.SessionID); err != nil {
		config.Logger.Error("Failed to end session",
			zap.Error(err),
			zap.String("session_id", sessionPayload.SessionID.String()))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found or already ended",
		})
	}

	if err := sc.StateService.ClearState(c.Context(), sessionPayload.SessionID); err != nil {
		config.Logger.Warn("Failed to clear session counters", zap.Error(err))
	}

	c.ClearCookie("session_token")

	return c.JSON(fiber.Map{
		"message": "Session ended",
	})
}
