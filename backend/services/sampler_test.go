package services

import (
	"testing"

	"epicquiz/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCategories = []string{
	models.CategoryCharacters,
	models.CategoryEvents,
	models.CategoryThemes,
	models.CategoryCulture,
}

var allDifficulties = []string{
	models.DifficultyEasy,
	models.DifficultyMedium,
	models.DifficultyHard,
}

func TestSampleFailsWhenPoolTooSmall(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	for i := 0; i < 4; i++ {
		createQuestion(t, db, epic.ID, allCategories[i], models.DifficultyEasy, 0)
	}

	_, err := SampleQuestions(db, epic.ID, 10, SampleFilters{})
	assert.ErrorIs(t, err, ErrInsufficientQuestions)
}

func TestSampleReturnsRequestedCount(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	for i := 0; i < 8; i++ {
		createQuestion(t, db, epic.ID, allCategories[i%4], allDifficulties[i%3], 0)
	}

	ids, err := SampleQuestions(db, epic.ID, 4, SampleFilters{})
	require.NoError(t, err)
	assert.Len(t, ids, 4)

	seen := make(map[uint]struct{})
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "question %d sampled twice", id)
		seen[id] = struct{}{}
	}
}

func TestSampleReturnsWholePoolWhenSmaller(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	for i := 0; i < 6; i++ {
		createQuestion(t, db, epic.ID, allCategories[i%4], allDifficulties[i%3], 0)
	}

	ids, err := SampleQuestions(db, epic.ID, 10, SampleFilters{})
	require.NoError(t, err)
	assert.Len(t, ids, 6)
}

func TestSampleReturnsFullCountFromSinglePartition(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	// Every question lands in the same (category, difficulty) cell; the quota
	// pass alone would keep only one row.
	for i := 0; i < 8; i++ {
		createQuestion(t, db, epic.ID, models.CategoryEvents, models.DifficultyMedium, 0)
	}

	ids, err := SampleQuestions(db, epic.ID, 4, SampleFilters{})
	require.NoError(t, err)
	assert.Len(t, ids, 4)
}

func TestSampleSpreadsAcrossCategories(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	// 12 questions: one per (category, difficulty) cell.
	for _, category := range allCategories {
		for _, difficulty := range allDifficulties {
			createQuestion(t, db, epic.ID, category, difficulty, 0)
		}
	}

	ids, err := SampleQuestions(db, epic.ID, 4, SampleFilters{})
	require.NoError(t, err)
	require.Len(t, ids, 4)

	var questions []models.Question
	require.NoError(t, db.Where("id IN ?", ids).Find(&questions).Error)
	categories := make(map[string]struct{})
	for _, q := range questions {
		categories[q.Category] = struct{}{}
	}
	assert.GreaterOrEqual(t, len(categories), 3, "a mixed sample should not collapse into few categories")
}

func TestSampleRespectsCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	for i := 0; i < 6; i++ {
		createQuestion(t, db, epic.ID, models.CategoryThemes, allDifficulties[i%3], 0)
	}
	for i := 0; i < 6; i++ {
		createQuestion(t, db, epic.ID, models.CategoryCulture, allDifficulties[i%3], 0)
	}

	ids, err := SampleQuestions(db, epic.ID, 5, SampleFilters{Category: models.CategoryThemes})
	require.NoError(t, err)
	require.Len(t, ids, 5)

	var questions []models.Question
	require.NoError(t, db.Where("id IN ?", ids).Find(&questions).Error)
	for _, q := range questions {
		assert.Equal(t, models.CategoryThemes, q.Category)
	}
}

func TestSampleRespectsBlockFilter(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)
	block := createBlock(t, db, epic.ID, models.DifficultyEasy, 1)

	blockIDs := make(map[uint]struct{})
	for i := 0; i < 6; i++ {
		q := createQuestion(t, db, epic.ID, allCategories[i%4], models.DifficultyEasy, 0)
		q.BlockID = &block.ID
		require.NoError(t, db.Save(&q).Error)
		blockIDs[q.ID] = struct{}{}
	}
	for i := 0; i < 6; i++ {
		createQuestion(t, db, epic.ID, allCategories[i%4], models.DifficultyEasy, 0)
	}

	ids, err := SampleQuestions(db, epic.ID, 5, SampleFilters{Block: &block})
	require.NoError(t, err)
	require.Len(t, ids, 5)
	for _, id := range ids {
		_, ok := blockIDs[id]
		assert.True(t, ok, "question %d is not in the block", id)
	}
}

func TestSampleRespectsKandaSarga(t *testing.T) {
	db := setupTestDB(t)
	epic := createEpic(t, db, true)

	kanda, sarga := 2, 14
	want := make(map[uint]struct{})
	for i := 0; i < 5; i++ {
		q := createQuestion(t, db, epic.ID, allCategories[i%4], models.DifficultyEasy, 0)
		q.Kanda = &kanda
		q.Sarga = &sarga
		require.NoError(t, db.Save(&q).Error)
		want[q.ID] = struct{}{}
	}
	otherKanda := 3
	for i := 0; i < 5; i++ {
		q := createQuestion(t, db, epic.ID, allCategories[i%4], models.DifficultyEasy, 0)
		q.Kanda = &otherKanda
		require.NoError(t, db.Save(&q).Error)
	}

	ids, err := SampleQuestions(db, epic.ID, 5, SampleFilters{Kanda: &kanda, Sarga: &sarga})
	require.NoError(t, err)
	require.Len(t, ids, 5)
	for _, id := range ids {
		_, ok := want[id]
		assert.True(t, ok, "question %d is outside the requested chapter", id)
	}
}
