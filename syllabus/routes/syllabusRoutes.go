package routes

import (
	"psle-tutor-backend/middleware"
	controllers "psle-tutor-backend/syllabus/controllers"
	"psle-tutor-backend/syllabus/repositories"
	"psle-tutor-backend/syllabus/services"

	"github.com/gofiber/fiber/v2"
)

func SyllabusInitRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	syllabusRepo repositories.SyllabusRepository,
	uploadService *services.SyllabusUploadService,
) {
	syllabusController := &controllers.SyllabusController{
		SyllabusRepo:  syllabusRepo,
		UploadService: uploadService,
	}

	api := app.Group("/api/v1", middleware.SessionProtected(appCtx))

	api.Post("/syllabus/documents", syllabusController.UploadSyllabusDocumentController)
	api.Get("/syllabus/documents", syllabusController.ListSyllabusDocumentsController)
}
