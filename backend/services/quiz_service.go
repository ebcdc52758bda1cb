package services

import (
	"errors"

	"epicquiz/backend/models"

	"gorm.io/gorm"
)

// PackageRequest carries the validated parameters of one package-generation
// call.
type PackageRequest struct {
	EpicID     uint
	Count      int
	Difficulty string
	Category   string
	Kanda      *int
	Sarga      *int
	BlockID    *uint
}

// GeneratePackage runs the full package pipeline: resolve the epic, resolve
// the block constraint, sample a balanced question set and assemble the
// client-facing package. It is a pure read; nothing is written.
func GeneratePackage(db *gorm.DB, req PackageRequest) (QuizPackage, error) {
	var epic models.Epic
	err := db.First(&epic, req.EpicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return QuizPackage{}, ErrEpicNotFound
	}
	if err != nil {
		return QuizPackage{}, err
	}
	if !epic.Available {
		return QuizPackage{}, ErrEpicUnavailable
	}

	block, err := SelectBlock(db, req.EpicID, req.BlockID, req.Difficulty)
	if err != nil {
		return QuizPackage{}, err
	}

	ids, err := SampleQuestions(db, req.EpicID, req.Count, SampleFilters{
		Block:      block,
		Kanda:      req.Kanda,
		Sarga:      req.Sarga,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		return QuizPackage{}, err
	}

	var questions []models.Question
	if err := db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return QuizPackage{}, err
	}

	// Restore the sampled order; the query makes no ordering promise.
	byID := make(map[uint]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	return AssemblePackage(epic, block, ordered), nil
}
