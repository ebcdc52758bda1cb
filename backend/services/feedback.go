package services

import "fmt"

// Feedback turns a score and per-category results into the message shown to
// the learner after a quiz.
func Feedback(score int, breakdown CategoryBreakdown) string {
	switch {
	case score >= 90:
		return "Excellent! You know this epic remarkably well."
	case score >= 70:
		return "Good progress! Keep reading to deepen your knowledge."
	case score >= 50:
		return "Worth a review. Reread the chapters you just covered and try the quiz again."
	default:
		if category, ok := breakdown.Weakest(); ok {
			return fmt.Sprintf("Keep going! Spend some extra time on %s questions, that is where the most room to grow is.", category)
		}
		return "Keep going! Focus on all areas and try another quiz soon."
	}
}
