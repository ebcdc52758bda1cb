package services

import (
	"math"

	"epicquiz/backend/models"

	"gorm.io/gorm"
)

// SubmittedAnswer is one answer of a completed quiz as sent by the client.
type SubmittedAnswer struct {
	QuestionID uint `json:"question_id" validate:"required"`
	UserAnswer int  `json:"user_answer" validate:"min=0,max=3"`
	TimeSpent  int  `json:"time_spent" validate:"min=0"`
}

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	Score              int
	TotalQuestions     int
	CorrectCount       int
	CorrectQuestionIDs []uint
	Breakdown          CategoryBreakdown
}

// ScoreSubmission validates submitted answers against the authoritative
// question records of one epic.
//
// Answers whose question id is not found in the epic (deleted, fabricated or
// belonging to another epic) are excluded from correctness and category
// accounting, but their slot still counts toward the TotalQuestions
// denominator, so a client sending bad ids scores lower rather than shorter.
func ScoreSubmission(db *gorm.DB, epicID uint, answers []SubmittedAnswer) (ScoreResult, error) {
	if len(answers) == 0 {
		return ScoreResult{}, ErrEmptySubmission
	}

	ids := make([]uint, 0, len(answers))
	seen := make(map[uint]struct{}, len(answers))
	for _, a := range answers {
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}

	var questions []models.Question
	err := db.Select("id", "category", "correct_answer").
		Where("epic_id = ? AND id IN ?", epicID, ids).
		Find(&questions).Error
	if err != nil {
		return ScoreResult{}, err
	}

	byID := make(map[uint]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	result := ScoreResult{TotalQuestions: len(answers)}
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		correct := a.UserAnswer == q.CorrectAnswer
		if correct {
			result.CorrectCount++
			result.CorrectQuestionIDs = append(result.CorrectQuestionIDs, a.QuestionID)
		}
		result.Breakdown.Add(q.Category, correct)
	}

	result.Score = int(math.Round(float64(result.CorrectCount) / float64(result.TotalQuestions) * 100))
	return result, nil
}
