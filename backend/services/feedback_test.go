package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackThresholds(t *testing.T) {
	var none CategoryBreakdown

	assert.Contains(t, Feedback(100, none), "Excellent")
	assert.Contains(t, Feedback(90, none), "Excellent")
	assert.Contains(t, Feedback(89, none), "Good progress")
	assert.Contains(t, Feedback(70, none), "Good progress")
	assert.Contains(t, Feedback(69, none), "review")
	assert.Contains(t, Feedback(50, none), "review")
}

func TestLowScoreNamesWeakestCategory(t *testing.T) {
	breakdown := CategoryBreakdown{
		Characters: CategoryScore{Correct: 2, Total: 3},
		Events:     CategoryScore{Correct: 0, Total: 4},
		Themes:     CategoryScore{Correct: 1, Total: 2},
	}

	message := Feedback(30, breakdown)
	assert.Contains(t, message, "events")
}

func TestWeakestTieKeepsFixedOrder(t *testing.T) {
	breakdown := CategoryBreakdown{
		Characters: CategoryScore{Correct: 0, Total: 2},
		Events:     CategoryScore{Correct: 0, Total: 2},
	}

	category, ok := breakdown.Weakest()
	assert.True(t, ok)
	assert.Equal(t, "characters", category)
}

func TestLowScoreWithoutAnswersFallsBack(t *testing.T) {
	var none CategoryBreakdown

	message := Feedback(0, none)
	assert.Contains(t, message, "all areas")
}
