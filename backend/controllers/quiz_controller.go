package controllers

import (
	"errors"
	"strconv"

	"epicquiz/backend/config"
	"epicquiz/backend/models"
	"epicquiz/backend/services"
	"epicquiz/backend/utils"
	"epicquiz/backend/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultQuestionCount = 10
	maxQuestionCount     = 50
)

type QuizController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuizController(db *gorm.DB, cfg *config.Config) *QuizController {
	return &QuizController{DB: db, Cfg: cfg}
}

// GetQuiz handles GET /api/quiz and returns a freshly sampled quiz package.
func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	epicID, err := strconv.Atoi(c.Query("epic"))
	if err != nil || epicID <= 0 {
		return utils.BadRequest(c, "Invalid epic ID")
	}

	req := services.PackageRequest{EpicID: uint(epicID)}
	if err := qc.parsePackageParams(c, &req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if blockParam := c.Query("blockId"); blockParam != "" {
		blockID, err := strconv.Atoi(blockParam)
		if err != nil || blockID <= 0 {
			return utils.BadRequest(c, "Invalid block ID")
		}
		id := uint(blockID)
		req.BlockID = &id
	}

	pkg, err := services.GeneratePackage(qc.DB, req)
	if err != nil {
		return quizError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, pkg)
}

// GetBlockQuiz handles GET /api/quiz/block/:blockId and returns a package
// constrained to one learning block.
func (qc *QuizController) GetBlockQuiz(c *fiber.Ctx) error {
	blockID, err := strconv.Atoi(c.Params("blockId"))
	if err != nil || blockID <= 0 {
		return utils.BadRequest(c, "Invalid block ID")
	}

	id := uint(blockID)
	block, err := services.SelectBlock(qc.DB, 0, &id, "")
	if err != nil {
		return quizError(c, err)
	}

	req := services.PackageRequest{EpicID: block.EpicID, BlockID: &id}
	if err := qc.parsePackageParams(c, &req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	pkg, err := services.GeneratePackage(qc.DB, req)
	if err != nil {
		return quizError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, pkg)
}

// GetEpicBlocks handles GET /api/quiz/blocks/:epicId.
func (qc *QuizController) GetEpicBlocks(c *fiber.Ctx) error {
	epicID, err := strconv.Atoi(c.Params("epicId"))
	if err != nil || epicID <= 0 {
		return utils.BadRequest(c, "Invalid epic ID")
	}

	difficulty := c.Query("difficulty", models.DifficultyMixed)
	if !validators.ValidDifficulty(difficulty) {
		return utils.BadRequest(c, "Invalid difficulty")
	}

	if err := qc.checkEpic(uint(epicID)); err != nil {
		return quizError(c, err)
	}

	blocks, err := services.ListBlocks(qc.DB, uint(epicID), difficulty)
	if err != nil {
		return quizError(c, err)
	}

	result := make([]fiber.Map, 0, len(blocks))
	for _, block := range blocks {
		var questionCount int64
		qc.DB.Model(&models.Question{}).Where("block_id = ?", block.ID).Count(&questionCount)

		result = append(result, fiber.Map{
			"id":             block.ID,
			"name":           block.Name,
			"difficulty":     block.Difficulty,
			"sequence_order": block.SequenceOrder,
			"kanda":          block.Kanda,
			"start_sarga":    block.StartSarga,
			"end_sarga":      block.EndSarga,
			"question_count": questionCount,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetRecommendedBlock handles GET /api/quiz/blocks/:epicId/recommended and
// returns the next block in the learning path for the given difficulty.
func (qc *QuizController) GetRecommendedBlock(c *fiber.Ctx) error {
	epicID, err := strconv.Atoi(c.Params("epicId"))
	if err != nil || epicID <= 0 {
		return utils.BadRequest(c, "Invalid epic ID")
	}

	difficulty := c.Query("difficulty", models.DifficultyEasy)
	if !validators.ValidDifficulty(difficulty) || difficulty == models.DifficultyMixed {
		return utils.BadRequest(c, "Invalid difficulty")
	}

	if err := qc.checkEpic(uint(epicID)); err != nil {
		return quizError(c, err)
	}

	block, err := services.SelectBlock(qc.DB, uint(epicID), nil, difficulty)
	if err != nil {
		return quizError(c, err)
	}
	if block == nil {
		return utils.NotFound(c, "No blocks available for this difficulty")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":             block.ID,
		"name":           block.Name,
		"difficulty":     block.Difficulty,
		"sequence_order": block.SequenceOrder,
		"kanda":          block.Kanda,
		"start_sarga":    block.StartSarga,
		"end_sarga":      block.EndSarga,
	})
}

// SubmitQuiz handles POST /api/quiz/submit: scores the answers, records the
// session and, for registered callers, merges the result into their profile.
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	var req validators.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fieldErrors := validators.ValidateSubmitQuiz(&req); len(fieldErrors) > 0 {
		return utils.ValidationError(c, fieldErrors)
	}

	var epic models.Epic
	if err := qc.DB.First(&epic, req.EpicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Epic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	result, err := services.ScoreSubmission(qc.DB, req.EpicID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrEmptySubmission) {
			return utils.BadRequest(c, "Submission contains no answers")
		}
		return utils.InternalServerError(c, "Could not score submission")
	}

	progress, err := services.RecordSubmission(qc.DB, req.EpicID, req.Answers, result, services.SubmissionMeta{
		QuizID:     req.QuizID,
		UserID:     utils.OptionalUserID(c, qc.Cfg),
		TimeSpent:  req.TimeSpent,
		DeviceType: req.DeviceType,
		AppVersion: req.AppVersion,
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not record submission")
	}

	response := fiber.Map{
		"score":              result.Score,
		"totalQuestions":     result.TotalQuestions,
		"correctAnswers":     result.CorrectCount,
		"correctQuestionIds": result.CorrectQuestionIDs,
		"percentage":         result.Score,
		"categories":         result.Breakdown,
		"feedback":           services.Feedback(result.Score, result.Breakdown),
	}
	if progress != nil {
		response["progress"] = progressView(*progress)
	}

	return utils.Created(c, response)
}

// parsePackageParams reads the shared count/difficulty/category/kanda/sarga
// query parameters into a package request.
func (qc *QuizController) parsePackageParams(c *fiber.Ctx, req *services.PackageRequest) error {
	count := c.QueryInt("count", defaultQuestionCount)
	if count < 1 || count > maxQuestionCount {
		return errors.New("Count must be between 1 and 50")
	}
	req.Count = count

	req.Difficulty = c.Query("difficulty", models.DifficultyMixed)
	if !validators.ValidDifficulty(req.Difficulty) {
		return errors.New("Invalid difficulty")
	}

	req.Category = c.Query("category", models.CategoryMixed)
	if !validators.ValidCategory(req.Category) {
		return errors.New("Invalid category")
	}

	if kandaParam := c.Query("kanda"); kandaParam != "" {
		kanda, err := strconv.Atoi(kandaParam)
		if err != nil || kanda <= 0 {
			return errors.New("Invalid kanda")
		}
		req.Kanda = &kanda

		if sargaParam := c.Query("sarga"); sargaParam != "" {
			sarga, err := strconv.Atoi(sargaParam)
			if err != nil || sarga <= 0 {
				return errors.New("Invalid sarga")
			}
			req.Sarga = &sarga
		}
	}

	return nil
}

func (qc *QuizController) checkEpic(epicID uint) error {
	var epic models.Epic
	err := qc.DB.First(&epic, epicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrEpicNotFound
	}
	if err != nil {
		return err
	}
	if !epic.Available {
		return services.ErrEpicUnavailable
	}
	return nil
}

// quizError maps engine errors onto HTTP responses.
func quizError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEpicNotFound):
		return utils.NotFound(c, "Epic not found")
	case errors.Is(err, services.ErrEpicUnavailable):
		return utils.Forbidden(c, "Epic is not available")
	case errors.Is(err, services.ErrBlockNotFound):
		return utils.NotFound(c, "Quiz block not found")
	case errors.Is(err, services.ErrInsufficientQuestions):
		return utils.UnprocessableEntity(c, "Not enough questions for this selection")
	default:
		return utils.InternalServerError(c, "Could not query database")
	}
}
