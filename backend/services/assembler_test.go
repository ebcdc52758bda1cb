package services

import (
	"encoding/json"
	"testing"

	"epicquiz/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembledPackageHidesDifficulty(t *testing.T) {
	epic := models.Epic{Title: "Ramayana", Language: "en"}
	questions := []models.Question{
		{
			EpicID:        1,
			Category:      models.CategoryCharacters,
			Difficulty:    models.DifficultyHard,
			Text:          "Who built the bridge to Lanka?",
			Options:       `["Rama","Nala","Ravana","Sugriva"]`,
			CorrectAnswer: 1,
			Explanation:   "Nala led the vanara engineers.",
		},
	}

	pkg := AssemblePackage(epic, nil, questions)
	require.Len(t, pkg.Questions, 1)

	raw, err := json.Marshal(pkg)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "difficulty")

	q := pkg.Questions[0]
	assert.Equal(t, "Who built the bridge to Lanka?", q.Text)
	assert.Equal(t, []string{"Rama", "Nala", "Ravana", "Sugriva"}, q.Options)
	assert.Equal(t, 1, q.CorrectID)
	assert.Equal(t, models.CategoryCharacters, q.Category)
}

func TestAssembledPackageIDsAreFresh(t *testing.T) {
	epic := models.Epic{Title: "Ramayana"}

	first := AssemblePackage(epic, nil, nil)
	second := AssemblePackage(epic, nil, nil)
	assert.NotEmpty(t, first.QuizID)
	assert.NotEqual(t, first.QuizID, second.QuizID)
}

func TestAssembledPackageEmbedsBlockSummary(t *testing.T) {
	epic := models.Epic{Title: "Ramayana", Language: "en"}
	block := models.QuizBlock{
		Name:               "Bala Kanda: Origins",
		Difficulty:         models.DifficultyEasy,
		Kanda:              1,
		StartSarga:         1,
		EndSarga:           10,
		LearningObjectives: `["Meet the main characters","Follow Rama's youth"]`,
	}

	pkg := AssemblePackage(epic, &block, nil)
	require.NotNil(t, pkg.Block)
	assert.Equal(t, "Bala Kanda: Origins", pkg.Block.Name)
	assert.Equal(t, models.DifficultyEasy, pkg.Block.Difficulty)
	assert.Equal(t, 1, pkg.Block.StartSarga)
	assert.Equal(t, 10, pkg.Block.EndSarga)
	assert.Equal(t, []string{"Meet the main characters", "Follow Rama's youth"}, pkg.Block.LearningObjectives)
}
