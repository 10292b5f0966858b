package routes

import (
	internal_services "psle-tutor-backend/internal/services"
	"psle-tutor-backend/middleware"
	questionbank_repositories "psle-tutor-backend/questionbank/repositories"
	controllers "psle-tutor-backend/quiz/controllers"
	"psle-tutor-backend/quiz/repositories"
	quiz_services "psle-tutor-backend/quiz/services"

	"github.com/gofiber/fiber/v2"
)

func QuizInitRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	quizRepo repositories.QuizRepository,
	gemini *internal_services.GeminiService,
	stateService *quiz_services.QuizStateService,
	indexRepo questionbank_repositories.QuestionIndexRepositoryInterface,
) {
	quizController := &controllers.QuizController{
		QuizRepo:     quizRepo,
		Gemini:       gemini,
		StateService: stateService,
		IndexRepo:    indexRepo,
	}

	api := app.Group("/api/v1", middleware.SessionProtected(appCtx))

	api.Post("/quiz/questions", quizController.GenerateQuestionController)
	api.Post("/quiz/answers", quizController.CheckAnswerController)
	api.Get("/quiz/history", quizController.QuizHistoryController)
}
