package validators

import (
	"fmt"

	"epicquiz/backend/models"
	"epicquiz/backend/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SubmitQuizRequest is the body of POST /api/quiz/submit.
type SubmitQuizRequest struct {
	QuizID     string                     `json:"quizId" validate:"required"`
	EpicID     uint                       `json:"epicId" validate:"required"`
	Answers    []services.SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
	TimeSpent  int                        `json:"timeSpent" validate:"min=0"`
	DeviceType string                     `json:"deviceType"`
	AppVersion string                     `json:"appVersion"`
}

// ValidateSubmitQuiz checks a submission body and returns field errors, or an
// empty map when the body is valid.
func ValidateSubmitQuiz(req *SubmitQuizRequest) map[string]string {
	errors := make(map[string]string)

	if err := validate.Struct(req); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Tag() {
			case "required":
				errors[fieldErr.Field()] = fmt.Sprintf("%s is required", fieldErr.Field())
			case "min":
				errors[fieldErr.Field()] = fmt.Sprintf("%s is below the allowed minimum", fieldErr.Field())
			case "max":
				errors[fieldErr.Field()] = fmt.Sprintf("%s is above the allowed maximum", fieldErr.Field())
			default:
				errors[fieldErr.Field()] = fmt.Sprintf("%s is invalid", fieldErr.Field())
			}
		}
	}

	return errors
}

// ValidDifficulty reports whether a difficulty query parameter is one of the
// accepted literals.
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard, models.DifficultyMixed:
		return true
	}
	return false
}

// ValidCategory reports whether a category query parameter is one of the
// accepted literals.
func ValidCategory(category string) bool {
	switch category {
	case models.CategoryCharacters, models.CategoryEvents, models.CategoryThemes,
		models.CategoryCulture, models.CategoryMixed:
		return true
	}
	return false
}
