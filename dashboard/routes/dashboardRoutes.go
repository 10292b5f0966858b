package routes

import (
	controllers "psle-tutor-backend/dashboard/controllers"
	"psle-tutor-backend/dashboard/repositories"
	"psle-tutor-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func DashboardInitRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	dashboardRepo repositories.DashboardRepository,
) {
	dashboardController := &controllers.DashboardController{
		DashboardRepo: dashboardRepo,
	}

	api := app.Group("/api/v1", middleware.SessionProtected(appCtx))

	api.Get("/dashboard/summary", dashboardController.SummaryController)
	api.Get("/dashboard/topics", dashboardController.TopicStatsController)
	api.Get("/dashboard/history", dashboardController.HistoryController)
	api.Get("/dashboard/export", dashboardController.ExportHistoryController)
}
