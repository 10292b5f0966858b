package routes

import (
	controllers "psle-tutor-backend/marker/controllers"
	"psle-tutor-backend/marker/repositories"
	"psle-tutor-backend/middleware"
	"psle-tutor-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func MarkerInitRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	worksheetRepo repositories.WorksheetRepository,
	storage utils.FileStorage,
	asynqClient *asynq.Client,
) {
	markerController := &controllers.MarkerController{
		WorksheetRepo: worksheetRepo,
		Storage:       storage,
		AsynqClient:   asynqClient,
	}

	api := app.Group("/api/v1", middleware.SessionProtected(appCtx))

	api.Post("/worksheets", markerController.UploadWorksheetController)
	api.Get("/worksheets/:id", markerController.GetWorksheetController)
}
