package services

import (
	"errors"

	"epicquiz/backend/models"

	"gorm.io/gorm"
)

// SelectBlock resolves which learning block, if any, constrains a package
// request.
//
// An explicit block id is authoritative. Otherwise a concrete difficulty
// selects the first available block of that (epic, difficulty) pair by
// sequence order, which is the next step of the learning path. With neither,
// no block constraint applies and nil is returned.
func SelectBlock(db *gorm.DB, epicID uint, blockID *uint, difficulty string) (*models.QuizBlock, error) {
	if blockID != nil {
		var block models.QuizBlock
		err := db.Where("id = ? AND available = ?", *blockID, true).First(&block).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		if err != nil {
			return nil, err
		}
		return &block, nil
	}

	if difficulty == "" || difficulty == models.DifficultyMixed {
		return nil, nil
	}

	var block models.QuizBlock
	err := db.Where("epic_id = ? AND difficulty = ? AND available = ?", epicID, difficulty, true).
		Order("sequence_order ASC").
		First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// ListBlocks returns the blocks of an epic ordered by their position in the
// learning path, optionally narrowed to one difficulty.
func ListBlocks(db *gorm.DB, epicID uint, difficulty string) ([]models.QuizBlock, error) {
	query := db.Where("epic_id = ? AND available = ?", epicID, true)
	if difficulty != "" && difficulty != models.DifficultyMixed {
		query = query.Where("difficulty = ?", difficulty)
	}

	var blocks []models.QuizBlock
	if err := query.Order("difficulty ASC, sequence_order ASC").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}
