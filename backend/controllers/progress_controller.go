package controllers

import (
	"errors"
	"math"
	"strconv"

	"epicquiz/backend/config"
	"epicquiz/backend/models"
	"epicquiz/backend/services"
	"epicquiz/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetProgress handles GET /api/progress and returns the caller's profiles
// across all epics.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var profiles []models.UserProgress
	if err := pc.DB.Where("user_id = ?", userID).Order("epic_id ASC").Find(&profiles).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, progressView(profile))
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetEpicProgress handles GET /api/progress/:epicId.
func (pc *ProgressController) GetEpicProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	epicID, err := strconv.Atoi(c.Params("epicId"))
	if err != nil || epicID <= 0 {
		return utils.BadRequest(c, "Invalid epic ID")
	}

	var profile models.UserProgress
	err = pc.DB.Where("user_id = ? AND epic_id = ?", userID, epicID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "No progress for this epic yet")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, progressView(profile))
}

// progressView shapes a profile row for responses. Accuracy is a derived
// percentage, not a stored value.
func progressView(profile models.UserProgress) fiber.Map {
	accuracy := 0
	if profile.TotalQuestionsAnswered > 0 {
		accuracy = int(math.Round(float64(profile.CorrectAnswers) / float64(profile.TotalQuestionsAnswered) * 100))
	}

	return fiber.Map{
		"epic_id":                  profile.EpicID,
		"quizzes_completed":        profile.QuizzesCompleted,
		"total_questions_answered": profile.TotalQuestionsAnswered,
		"correct_answers":          profile.CorrectAnswers,
		"accuracy":                 accuracy,
		"categories":               services.BreakdownFromProgress(profile),
		"last_quiz_at":             profile.LastQuizAt,
	}
}
