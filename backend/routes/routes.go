package routes

import (
	"epicquiz/backend/config"
	"epicquiz/backend/controllers"
	"epicquiz/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Quiz routes
	quizController := controllers.NewQuizController(db, cfg)
	app.Get("/api/quiz", quizController.GetQuiz)
	app.Get("/api/quiz/blocks/:epicId", quizController.GetEpicBlocks)
	app.Get("/api/quiz/blocks/:epicId/recommended", quizController.GetRecommendedBlock)
	app.Get("/api/quiz/block/:blockId", quizController.GetBlockQuiz)
	app.Post("/api/quiz/submit", quizController.SubmitQuiz)

	// Epic routes
	epicsController := controllers.NewEpicsController(db, cfg)
	app.Get("/api/epics", epicsController.GetEpics)
	app.Get("/api/epics/:id", epicsController.GetEpic)

	// Progress routes (registered callers only)
	authMiddleware := middleware.AuthMiddleware(cfg)
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/:epicId", authMiddleware, progressController.GetEpicProgress)
}
