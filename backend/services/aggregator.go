package services

import (
	"encoding/json"
	"time"

	"epicquiz/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmissionMeta carries everything about a submission that is not an answer.
type SubmissionMeta struct {
	QuizID     string
	UserID     *uint
	TimeSpent  int
	DeviceType string
	AppVersion string
}

// RecordSubmission persists the attempt and merges it into the caller's skill
// profile, all inside a single transaction. If any write fails the whole
// submission rolls back and nothing is visible.
//
// Anonymous submissions (nil user id) only write the session row. For
// registered users the (user, epic) profile is created on first submission
// and merged additively on every later one; it is never replaced.
func RecordSubmission(db *gorm.DB, epicID uint, answers []SubmittedAnswer, result ScoreResult, meta SubmissionMeta) (*models.UserProgress, error) {
	payload, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	var progress *models.UserProgress
	err = db.Transaction(func(tx *gorm.DB) error {
		session := models.QuizSession{
			UserID:         meta.UserID,
			EpicID:         epicID,
			QuizID:         meta.QuizID,
			Answers:        string(payload),
			Score:          result.Score,
			TotalQuestions: result.TotalQuestions,
			CorrectAnswers: result.CorrectCount,
			TimeSpent:      meta.TimeSpent,
			DeviceType:     meta.DeviceType,
			AppVersion:     meta.AppVersion,
			CompletedAt:    time.Now(),
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		if meta.UserID == nil {
			return nil
		}

		// Merge with an upsert and SQL-side increments. A read-then-save
		// merge would lose one of two concurrent submissions for the same
		// (user, epic) pair; the increments keep both regardless of order.
		now := time.Now()
		p := models.UserProgress{
			UserID:                 *meta.UserID,
			EpicID:                 epicID,
			QuizzesCompleted:       1,
			TotalQuestionsAnswered: result.TotalQuestions,
			CorrectAnswers:         result.CorrectCount,
			CharactersCorrect:      result.Breakdown.Characters.Correct,
			CharactersTotal:        result.Breakdown.Characters.Total,
			EventsCorrect:          result.Breakdown.Events.Correct,
			EventsTotal:            result.Breakdown.Events.Total,
			ThemesCorrect:          result.Breakdown.Themes.Correct,
			ThemesTotal:            result.Breakdown.Themes.Total,
			CultureCorrect:         result.Breakdown.Culture.Correct,
			CultureTotal:           result.Breakdown.Culture.Total,
			LastQuizAt:             now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "epic_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quizzes_completed":        gorm.Expr("quizzes_completed + ?", 1),
				"total_questions_answered": gorm.Expr("total_questions_answered + ?", result.TotalQuestions),
				"correct_answers":          gorm.Expr("correct_answers + ?", result.CorrectCount),
				"characters_correct":       gorm.Expr("characters_correct + ?", result.Breakdown.Characters.Correct),
				"characters_total":         gorm.Expr("characters_total + ?", result.Breakdown.Characters.Total),
				"events_correct":           gorm.Expr("events_correct + ?", result.Breakdown.Events.Correct),
				"events_total":             gorm.Expr("events_total + ?", result.Breakdown.Events.Total),
				"themes_correct":           gorm.Expr("themes_correct + ?", result.Breakdown.Themes.Correct),
				"themes_total":             gorm.Expr("themes_total + ?", result.Breakdown.Themes.Total),
				"culture_correct":          gorm.Expr("culture_correct + ?", result.Breakdown.Culture.Correct),
				"culture_total":            gorm.Expr("culture_total + ?", result.Breakdown.Culture.Total),
				"last_quiz_at":             now,
				"updated_at":               now,
			}),
		}).Create(&p).Error
		if err != nil {
			return err
		}

		// Re-read so the caller sees the merged counts, not the per-attempt
		// values the upsert started from.
		var merged models.UserProgress
		if err := tx.Where("user_id = ? AND epic_id = ?", *meta.UserID, epicID).First(&merged).Error; err != nil {
			return err
		}
		progress = &merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}
