package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"psle-tutor-backend/config"
	"psle-tutor-backend/syllabus/repositories"
	"psle-tutor-backend/syllabus/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SyllabusController struct {
	SyllabusRepo  repositories.SyllabusRepository
	UploadService *services.SyllabusUploadService
}

// UploadSyllabusDocumentController uploads one reference PDF to the Gemini
// Files API and records its URI.
func (sc *SyllabusController) UploadSyllabusDocumentController(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'document' file in form data",
		})
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF documents are accepted",
		})
	}

	// Staged under the original name so the recorded document keeps it
	tempDir, err := os.MkdirTemp("", "syllabus")
	if err != nil {
		config.Logger.Error("Failed to create staging directory", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save uploaded file",
		})
	}
	defer os.RemoveAll(tempDir)

	tempPath := filepath.Join(tempDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tempPath); err != nil {
		config.Logger.Error("Failed to save uploaded syllabus PDF", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save uploaded file",
		})
	}

	doc, err := sc.UploadService.UploadFile(c.Context(), tempPath)
	if err != nil {
		config.Logger.Error("Failed to upload syllabus PDF",
			zap.String("fileName", fileHeader.Filename),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to upload document to the file store",
		})
	}

	config.Logger.Info("Syllabus document uploaded",
		zap.String("fileName", doc.FileName),
		zap.String("uri", doc.GeminiFileURI),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document": doc,
	})
}

// ListSyllabusDocumentsController lists uploaded reference documents.
func (sc *SyllabusController) ListSyllabusDocumentsController(c *fiber.Ctx) error {
	docs, err := sc.SyllabusRepo.ListDocuments()
	if err != nil {
		config.Logger.Error("Failed to list syllabus documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	return c.JSON(fiber.Map{
		"documents": docs,
	})
}
