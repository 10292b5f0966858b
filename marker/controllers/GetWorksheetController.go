package controllers

import (
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetWorksheetController returns one submission with its marking feedback.
// Submissions are scoped to the requesting session.
func (mc *MarkerController) GetWorksheetController(c *fiber.Ctx) error {
	payload, ok := c.Locals("session").(*token.Payload)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid submission ID",
		})
	}

	submission, err := mc.WorksheetRepo.GetSubmissionByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch submission",
		})
	}
	if submission == nil || submission.SessionID != payload.SessionID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}

	return c.JSON(fiber.Map{
		"submission": submission,
	})
}
