package routes

import (
	"psle-tutor-backend/middleware"
	quiz_services "psle-tutor-backend/quiz/services"
	controllers "psle-tutor-backend/sessions/controllers"
	"psle-tutor-backend/sessions/repositories"
	"psle-tutor-backend/token"

	"github.com/gofiber/fiber/v2"
)

func SessionInitRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	sessionRepo repositories.SessionRepository,
	tokenMaker token.Maker,
	stateService *quiz_services.QuizStateService,
) {
	sessionController := &controllers.SessionController{
		SessionRepo: sessionRepo,
		TokenMaker:  tokenMaker,
	}
	endController := &controllers.EndSessionController{
		SessionController: *sessionController,
		StateService:      stateService,
	}

	api := app.Group("/api/v1")

	api.Post("/sessions", sessionController.CreateSessionController)
	api.Delete("/sessions/current", middleware.SessionProtected(appCtx), endController.EndSession)
}
