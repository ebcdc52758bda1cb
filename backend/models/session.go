package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizSession is the audit record of one completed attempt. Rows are written
// once and never updated.
type QuizSession struct {
	gorm.Model
	UserID         *uint `gorm:"index"` // nil for anonymous attempts
	EpicID         uint  `gorm:"not null;index"`
	QuizID         string
	Answers        string // JSON payload of the submitted answers
	Score          int
	TotalQuestions int
	CorrectAnswers int
	TimeSpent      int // seconds
	DeviceType     string
	AppVersion     string
	CompletedAt    time.Time
}
