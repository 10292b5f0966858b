package controllers

import (
	"strings"
	"time"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	"psle-tutor-backend/sessions/repositories"
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionTokenDuration keeps a session token valid for one study day.
const SessionTokenDuration = 24 * time.Hour

type SessionController struct {
	SessionRepo repositories.SessionRepository
	TokenMaker  token.Maker
}

type createSessionRequest struct {
	DisplayName string `json:"display_name"`
	ParentEmail string `json:"parent_email"`
}

// CreateSessionController starts a student session and issues its token. The
// token is returned in the body and also set as an HTTPOnly cookie for the
// websocket upgrade.
func (sc *SessionController) CreateSessionController(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CreateSessionController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "display_name is required",
		})
	}

	session := &models.StudentSession{
		DisplayName: displayName,
	}
	if email := strings.TrimSpace(req.ParentEmail); email != "" {
		session.ParentEmail = &email
	}

	session, err := sc.SessionRepo.CreateSession(session)
	if err != nil {
		config.Logger.Error("Failed to create session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	tokenStr, err := sc.TokenMaker.CreateToken(session.ID, SessionTokenDuration)
	if err != nil {
		config.Logger.Error("Failed to create session token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    tokenStr,
		Expires:  time.Now().Add(SessionTokenDuration),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	config.Logger.Info("Student session started",
		zap.String("session_id", session.ID.String()),
		zap.String("display_name", session.DisplayName))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session": session,
		"token":   tokenStr,
	})
}
