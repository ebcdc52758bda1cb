package models

import "gorm.io/gorm"

// Question categories and difficulties are closed sets. "mixed" is only a
// request-time wildcard and never stored.
const (
	CategoryCharacters = "characters"
	CategoryEvents     = "events"
	CategoryThemes     = "themes"
	CategoryCulture    = "culture"
	CategoryMixed      = "mixed"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

type Question struct {
	gorm.Model
	EpicID        uint   `gorm:"not null;index"`
	Category      string // characters, events, themes, culture
	Difficulty    string // easy, medium, hard
	Text          string
	Options       string // JSON array of exactly 4 options
	CorrectAnswer int    // index into Options, 0..3
	Explanation   string
	Kanda         *int
	Sarga         *int
	BlockID       *uint `gorm:"index"`
}

// QuizBlock groups a sarga range of one epic into a step of the learning
// path. Blocks of the same (epic, difficulty) form a strict sequence.
type QuizBlock struct {
	gorm.Model
	EpicID             uint `gorm:"not null;index"`
	Name               string
	Difficulty         string // easy, medium, hard
	SequenceOrder      int
	Kanda              int
	StartSarga         int
	EndSarga           int
	LearningObjectives string // JSON array
	Available          bool
}
