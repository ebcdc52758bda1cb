package services

import (
	"encoding/json"

	"epicquiz/backend/models"

	"github.com/google/uuid"
)

// EpicSummary is the slice of an epic embedded in a quiz package.
type EpicSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

// BlockSummary describes the learning block a package was constrained to.
type BlockSummary struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Difficulty         string   `json:"difficulty"`
	Kanda              int      `json:"kanda"`
	StartSarga         int      `json:"start_sarga"`
	EndSarga           int      `json:"end_sarga"`
	LearningObjectives []string `json:"learning_objectives"`
}

// PackageQuestion is the client-facing projection of a question. Difficulty
// is not part of it: clients must not be able to tell hard questions apart
// before answering.
type PackageQuestion struct {
	ID          uint     `json:"id"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	CorrectID   int      `json:"correct_answer_id"`
	Explanation string   `json:"basic_explanation"`
	Category    string   `json:"category"`
}

// QuizPackage is the ephemeral bundle returned to the client. It is never
// persisted; only the eventual submission is.
type QuizPackage struct {
	QuizID    string            `json:"quiz_id"`
	Epic      EpicSummary       `json:"epic"`
	Block     *BlockSummary     `json:"block,omitempty"`
	Questions []PackageQuestion `json:"questions"`
}

// AssemblePackage shapes sampled questions into a QuizPackage with a fresh
// package id.
func AssemblePackage(epic models.Epic, block *models.QuizBlock, questions []models.Question) QuizPackage {
	pkg := QuizPackage{
		QuizID: uuid.NewString(),
		Epic: EpicSummary{
			ID:       epic.ID,
			Title:    epic.Title,
			Language: epic.Language,
		},
		Questions: make([]PackageQuestion, 0, len(questions)),
	}

	if block != nil {
		summary := BlockSummary{
			ID:         block.ID,
			Name:       block.Name,
			Difficulty: block.Difficulty,
			Kanda:      block.Kanda,
			StartSarga: block.StartSarga,
			EndSarga:   block.EndSarga,
		}
		json.Unmarshal([]byte(block.LearningObjectives), &summary.LearningObjectives)
		pkg.Block = &summary
	}

	for _, q := range questions {
		var options []string
		json.Unmarshal([]byte(q.Options), &options)

		pkg.Questions = append(pkg.Questions, PackageQuestion{
			ID:          q.ID,
			Text:        q.Text,
			Options:     options,
			CorrectID:   q.CorrectAnswer,
			Explanation: q.Explanation,
			Category:    q.Category,
		})
	}
	return pkg
}
