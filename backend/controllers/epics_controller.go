package controllers

import (
	"errors"
	"strconv"

	"epicquiz/backend/config"
	"epicquiz/backend/models"
	"epicquiz/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EpicsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEpicsController(db *gorm.DB, cfg *config.Config) *EpicsController {
	return &EpicsController{DB: db, Cfg: cfg}
}

// GetEpics handles GET /api/epics and lists the published epics.
func (ec *EpicsController) GetEpics(c *fiber.Ctx) error {
	var epics []models.Epic
	if err := ec.DB.Where("available = ?", true).Order("id ASC").Find(&epics).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(epics))
	for _, epic := range epics {
		result = append(result, fiber.Map{
			"id":       epic.ID,
			"title":    epic.Title,
			"language": epic.Language,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetEpic handles GET /api/epics/:id.
func (ec *EpicsController) GetEpic(c *fiber.Ctx) error {
	epicID, err := strconv.Atoi(c.Params("id"))
	if err != nil || epicID <= 0 {
		return utils.BadRequest(c, "Invalid epic ID")
	}

	var epic models.Epic
	if err := ec.DB.First(&epic, epicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Epic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !epic.Available {
		return utils.Forbidden(c, "Epic is not available")
	}

	var questionCount, blockCount int64
	ec.DB.Model(&models.Question{}).Where("epic_id = ?", epic.ID).Count(&questionCount)
	ec.DB.Model(&models.QuizBlock{}).Where("epic_id = ? AND available = ?", epic.ID, true).Count(&blockCount)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":             epic.ID,
		"title":          epic.Title,
		"language":       epic.Language,
		"question_count": questionCount,
		"block_count":    blockCount,
	})
}
