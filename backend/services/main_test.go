package services

import (
	"fmt"
	"testing"

	"epicquiz/backend/models"
	"epicquiz/backend/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := utils.MigrateDB(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createEpic(t *testing.T, db *gorm.DB, available bool) models.Epic {
	t.Helper()

	epic := models.Epic{Title: "Ramayana", Language: "en", Available: available}
	if err := db.Create(&epic).Error; err != nil {
		t.Fatalf("create epic: %v", err)
	}
	return epic
}

func createQuestion(t *testing.T, db *gorm.DB, epicID uint, category, difficulty string, correct int) models.Question {
	t.Helper()

	question := models.Question{
		EpicID:        epicID,
		Category:      category,
		Difficulty:    difficulty,
		Text:          fmt.Sprintf("A %s question about %s", difficulty, category),
		Options:       `["Rama","Sita","Lakshmana","Hanuman"]`,
		CorrectAnswer: correct,
		Explanation:   "See the sarga for context.",
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func createBlock(t *testing.T, db *gorm.DB, epicID uint, difficulty string, sequenceOrder int) models.QuizBlock {
	t.Helper()

	block := models.QuizBlock{
		EpicID:             epicID,
		Name:               fmt.Sprintf("%s block %d", difficulty, sequenceOrder),
		Difficulty:         difficulty,
		SequenceOrder:      sequenceOrder,
		Kanda:              1,
		StartSarga:         (sequenceOrder-1)*10 + 1,
		EndSarga:           sequenceOrder * 10,
		LearningObjectives: `["Follow the story"]`,
		Available:          true,
	}
	if err := db.Create(&block).Error; err != nil {
		t.Fatalf("create block: %v", err)
	}
	return block
}
