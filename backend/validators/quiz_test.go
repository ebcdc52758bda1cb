package validators

import (
	"testing"

	"epicquiz/backend/services"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmitQuiz(t *testing.T) {
	valid := SubmitQuizRequest{
		QuizID: "pkg-1",
		EpicID: 1,
		Answers: []services.SubmittedAnswer{
			{QuestionID: 3, UserAnswer: 2, TimeSpent: 10},
		},
		TimeSpent: 10,
	}
	assert.Empty(t, ValidateSubmitQuiz(&valid))

	missing := SubmitQuizRequest{EpicID: 1}
	errs := ValidateSubmitQuiz(&missing)
	assert.Contains(t, errs, "QuizID")
	assert.Contains(t, errs, "Answers")

	outOfRange := valid
	outOfRange.Answers = []services.SubmittedAnswer{
		{QuestionID: 3, UserAnswer: 7},
	}
	errs = ValidateSubmitQuiz(&outOfRange)
	assert.Contains(t, errs, "UserAnswer")
}

func TestValidDifficulty(t *testing.T) {
	assert.True(t, ValidDifficulty("easy"))
	assert.True(t, ValidDifficulty("medium"))
	assert.True(t, ValidDifficulty("hard"))
	assert.True(t, ValidDifficulty("mixed"))
	assert.False(t, ValidDifficulty(""))
	assert.False(t, ValidDifficulty("impossible"))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("characters"))
	assert.True(t, ValidCategory("events"))
	assert.True(t, ValidCategory("themes"))
	assert.True(t, ValidCategory("culture"))
	assert.True(t, ValidCategory("mixed"))
	assert.False(t, ValidCategory("monsters"))
}
