package controllers

import (
	"fmt"
	"time"

	"psle-tutor-backend/config"
	"psle-tutor-backend/token"
	"psle-tutor-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Answered At", "Topic", "Difficulty", "Selected Answer", "Correct Answer", "Result", "Points",
}

// ExportHistoryController writes the full attempt history to a spreadsheet
// and sends it back as a download.
func (dc *DashboardController) ExportHistoryController(c *fiber.Ctx) error {
	sessionPayload := c.Locals("session").(*token.Payload)

	attempts, err := dc.DashboardRepo.GetAllAttempts(sessionPayload.SessionID)
	if err != nil {
		config.Logger.Error("Failed to fetch attempts for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attempts for export",
		})
	}
	if len(attempts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No quiz history to export yet",
		})
	}

	rows := make([][]interface{}, 0, len(attempts))
	for _, attempt := range attempts {
		result := "Wrong"
		if attempt.IsCorrect {
			result = "Correct"
		}
		rows = append(rows, []interface{}{
			attempt.CreatedAt.In(utils.DateLocation).Format("2006-01-02 15:04"),
			string(attempt.Topic),
			string(attempt.Difficulty),
			attempt.SelectedAnswer,
			attempt.CorrectAnswer,
			result,
			attempt.PointsAwarded,
		})
	}

	fileName := fmt.Sprintf("quiz_history_%s_%s.xlsx",
		sessionPayload.SessionID.String(),
		time.Now().In(utils.DateLocation).Format("20060102_150405"),
	)
	filePath, err := utils.GenerateExcel(fileName, exportHeaders, rows)
	if err != nil {
		config.Logger.Error("Failed to generate export spreadsheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate export",
		})
	}

	config.Logger.Info("Quiz history exported",
		zap.String("sessionID", sessionPayload.SessionID.String()),
		zap.Int("attempts", len(attempts)),
		zap.String("file", filePath),
	)

	return c.Download(filePath, fileName)
}
