package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress is the durable skill profile for one (user, epic) pair. It is
// created on the user's first submission and every later submission adds on
// top of the stored counts. The per-category counters are fixed columns so
// the four-category set stays closed.
type UserProgress struct {
	gorm.Model
	UserID                 uint `gorm:"not null;uniqueIndex:idx_user_epic"`
	EpicID                 uint `gorm:"not null;uniqueIndex:idx_user_epic"`
	QuizzesCompleted       int
	TotalQuestionsAnswered int
	CorrectAnswers         int
	CharactersCorrect      int
	CharactersTotal        int
	EventsCorrect          int
	EventsTotal            int
	ThemesCorrect          int
	ThemesTotal            int
	CultureCorrect         int
	CultureTotal           int
	LastQuizAt             time.Time
}
