package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	"psle-tutor-backend/marker/repositories"
	"psle-tutor-backend/marker/services"
	"psle-tutor-backend/marker/tasks"
	"psle-tutor-backend/token"
	"psle-tutor-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type MarkerController struct {
	WorksheetRepo repositories.WorksheetRepository
	Storage       utils.FileStorage
	AsynqClient   *asynq.Client
}

// UploadWorksheetController accepts a worksheet image, stores it, and queues
// the marking task. The response is immediate; the verdict arrives over the
// WebSocket channel once the background worker finishes.
func (mc *MarkerController) UploadWorksheetController(c *fiber.Ctx) error {
	payload, ok := c.Locals("session").(*token.Payload)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	fileHeader, err := c.FormFile("worksheet")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'worksheet' file in form data",
		})
	}

	mimeType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get("Content-Type")))
	supported, isPDF := services.SupportedWorksheetType(mimeType)
	if !supported {
		if isPDF {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "PDF worksheets are not supported. Please take a photo or screenshot of the worksheet page and upload it as a PNG or JPG image.",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unsupported file type %q. Upload a PNG or JPG image of the worksheet.", mimeType),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		config.Logger.Error("Failed to open uploaded worksheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	filePath, err := mc.Storage.UploadFile(file, storedName)
	if err != nil {
		config.Logger.Error("Failed to store worksheet image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store uploaded file",
		})
	}

	submission, err := mc.WorksheetRepo.CreateSubmission(&models.WorksheetSubmission{
		SessionID: payload.SessionID,
		FileName:  fileHeader.Filename,
		FilePath:  filePath,
		MimeType:  mimeType,
	})
	if err != nil {
		config.Logger.Error("Failed to create worksheet submission", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record submission",
		})
	}

	task, err := tasks.NewMarkWorksheetTask(submission.ID)
	if err != nil {
		config.Logger.Error("Failed to build marking task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue marking task",
		})
	}
	if _, err := mc.AsynqClient.Enqueue(task); err != nil {
		config.Logger.Error("Failed to enqueue marking task",
			zap.String("submissionID", submission.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue marking task",
		})
	}

	config.Logger.Info("Worksheet queued for marking",
		zap.String("submissionID", submission.ID.String()),
		zap.String("sessionID", payload.SessionID.String()),
		zap.String("fileName", fileHeader.Filename),
	)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"id":     submission.ID,
		"status": submission.Status,
	})
}
