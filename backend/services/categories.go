package services

import "epicquiz/backend/models"

// CategoryScore counts answered questions in one category.
type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// CategoryBreakdown holds one score bucket per question category. The four
// categories are a closed set, so they live in struct fields instead of a
// string-keyed map.
type CategoryBreakdown struct {
	Characters CategoryScore `json:"characters"`
	Events     CategoryScore `json:"events"`
	Themes     CategoryScore `json:"themes"`
	Culture    CategoryScore `json:"culture"`
}

// categoryOrder fixes the iteration order used for tie-breaking.
var categoryOrder = []string{
	models.CategoryCharacters,
	models.CategoryEvents,
	models.CategoryThemes,
	models.CategoryCulture,
}

func (b *CategoryBreakdown) bucket(category string) *CategoryScore {
	switch category {
	case models.CategoryCharacters:
		return &b.Characters
	case models.CategoryEvents:
		return &b.Events
	case models.CategoryThemes:
		return &b.Themes
	case models.CategoryCulture:
		return &b.Culture
	}
	return nil
}

// Add records one answered question. Unrecognized categories are ignored.
func (b *CategoryBreakdown) Add(category string, correct bool) {
	score := b.bucket(category)
	if score == nil {
		return
	}
	score.Total++
	if correct {
		score.Correct++
	}
}

// BreakdownFromProgress rebuilds a breakdown from the stored per-category
// columns of a profile.
func BreakdownFromProgress(p models.UserProgress) CategoryBreakdown {
	return CategoryBreakdown{
		Characters: CategoryScore{Correct: p.CharactersCorrect, Total: p.CharactersTotal},
		Events:     CategoryScore{Correct: p.EventsCorrect, Total: p.EventsTotal},
		Themes:     CategoryScore{Correct: p.ThemesCorrect, Total: p.ThemesTotal},
		Culture:    CategoryScore{Correct: p.CultureCorrect, Total: p.CultureTotal},
	}
}

// Weakest returns the category with the lowest correctness ratio among
// categories with at least one answered question. Ties keep the earlier
// category in the fixed order. The second return value is false when no
// category has any answers.
func (b *CategoryBreakdown) Weakest() (string, bool) {
	weakest := ""
	lowest := 0.0
	for _, category := range categoryOrder {
		score := b.bucket(category)
		if score.Total == 0 {
			continue
		}
		ratio := float64(score.Correct) / float64(score.Total)
		if weakest == "" || ratio < lowest {
			weakest = category
			lowest = ratio
		}
	}
	return weakest, weakest != ""
}
