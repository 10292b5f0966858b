package main

import (
	"context"

	"psle-tutor-backend/config"
	dashboard_repositories "psle-tutor-backend/dashboard/repositories"
	dashboard_routes "psle-tutor-backend/dashboard/routes"
	internal_services "psle-tutor-backend/internal/services"
	marker_repositories "psle-tutor-backend/marker/repositories"
	marker_routes "psle-tutor-backend/marker/routes"
	marker_tasks "psle-tutor-backend/marker/tasks"
	"psle-tutor-backend/middleware"
	questionbank_controllers "psle-tutor-backend/questionbank/controllers"
	questionbank_repositories "psle-tutor-backend/questionbank/repositories"
	questionbank_routes "psle-tutor-backend/questionbank/routes"
	bleveServices "psle-tutor-backend/questionbank/services"
	quiz_repositories "psle-tutor-backend/quiz/repositories"
	quiz_routes "psle-tutor-backend/quiz/routes"
	quiz_services "psle-tutor-backend/quiz/services"
	sessions_repositories "psle-tutor-backend/sessions/repositories"
	sessions_routes "psle-tutor-backend/sessions/routes"
	syllabus_repositories "psle-tutor-backend/syllabus/repositories"
	syllabus_routes "psle-tutor-backend/syllabus/routes"
	syllabus_services "psle-tutor-backend/syllabus/services"
	"psle-tutor-backend/token"
	"psle-tutor-backend/utils"
	"psle-tutor-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // worksheet photos
	})

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()

	ctx := context.Background()
	redisClient := config.InitRedisServer(ctx)

	port := config.GetEnvOrDefault("PORT", "8080")

	redisAddr := config.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")

	// Note: asynq.RedisClientOpt uses its own Redis client internally.
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data" // Default for local development
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	// Resolved from the managed secrets file first, then the environment.
	// Fatal when missing, with remediation steps for both channels.
	googleAPIKey := config.GetGoogleAPIKey()

	geminiService, err := internal_services.NewGeminiService(googleAPIKey)
	if err != nil {
		config.Logger.Fatal("Cannot create Gemini service", zap.Error(err))
	}

	// Initialize the mailer
	utils.InitializeMailer()

	mailer := utils.GetMailer()
	if mailer == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	// ------ WebSocket Hub Initialization for Marking Notifications ------
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Serve static files
	app.Static("/public", "./public")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	questionIndexRepo, questionIndexInterface := questionbank_repositories.NewQuestionIndexRepository(bleveIndexingService)
	sessionRepo := sessions_repositories.NewSessionRepository(db)
	quizRepo := quiz_repositories.NewQuizRepository(db)
	worksheetRepo := marker_repositories.NewWorksheetRepository(db)
	dashboardRepo := dashboard_repositories.NewDashboardRepository(db)
	syllabusRepo := syllabus_repositories.NewSyllabusRepository(db)

	// Services
	fileStorage := utils.NewLocalFileStorage("./uploads")
	stateService := quiz_services.NewQuizStateService(redisClient)
	syllabusUploadService := syllabus_services.NewSyllabusUploadService(geminiService, syllabusRepo)
	progressReportService := internal_services.NewProgressReportService(sessionRepo, dashboardRepo, db)

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// ------ Background marking worker ------
	asynqServer := asynq.NewServer(asynqRedisOpt, asynq.Config{
		Concurrency: 5,
	})
	mux := asynq.NewServeMux()
	mux.Handle(marker_tasks.TypeMarkWorksheet, marker_tasks.NewMarkWorksheetProcessor(worksheetRepo, geminiService, wsHub))
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			config.Logger.Fatal("Marking worker failed", zap.Error(err))
		}
	}()

	// Routes
	sessions_routes.SessionInitRoutes(app, appCtx, sessionRepo, tokenMaker, stateService)
	quiz_routes.QuizInitRoutes(app, appCtx, quizRepo, geminiService, stateService, questionIndexInterface)
	marker_routes.MarkerInitRoutes(app, appCtx, worksheetRepo, fileStorage, asynqClient)
	dashboard_routes.DashboardInitRoutes(app, appCtx, dashboardRepo)
	syllabus_routes.SyllabusInitRoutes(app, appCtx, syllabusRepo, syllabusUploadService)

	// Create WebSocket handler with token validation
	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)

	// ------ WebSocket Route for Marking Notifications ------
	app.Get("/ws", wsHandler.HandleWebSocket)
	config.Logger.Info("WebSocket endpoint registered at /ws")

	// Question bank search routes
	searchController := questionbank_controllers.NewSearchController(questionIndexRepo)
	questionbank_routes.InitSearchRoutes(app, searchController)

	// Date location
	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	// Background cleanup tasks
	go utils.RunScheduledCleanup(redisClient)

	// Weekly parent progress reports
	progressReportService.RunWeeklyProgressReports()

	// Start the application
	config.Logger.Info("Server starting with WebSocket support", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
