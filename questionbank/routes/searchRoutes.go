package routes

import (
	"psle-tutor-backend/questionbank/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, searchController *controllers.SearchController) {
	api := app.Group("/api/v1")

	api.Get("/questions/search", searchController.SearchQuestionsController)
}
