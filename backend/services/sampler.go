package services

import (
	"math/rand/v2"

	"epicquiz/backend/models"

	"gorm.io/gorm"
)

// minViableSample is the smallest pool the sampler will work with. Requests
// for fewer questions than this only need the pool to cover the request.
const minViableSample = 5

// SampleFilters narrows the question pool before sampling. A resolved block
// takes precedence over kanda/sarga coordinates. Difficulty and category may
// be "mixed" (or empty), in which case they stay open and become
// stratification dimensions instead of filters.
type SampleFilters struct {
	Block      *models.QuizBlock
	Kanda      *int
	Sarga      *int
	Difficulty string
	Category   string
}

// SampleQuestions picks a balanced set of question ids from one epic's pool.
//
// The selection runs in two phases. First the filtered pool is partitioned by
// the open dimensions (category and/or difficulty), each partition is
// shuffled, and only a per-partition quota survives, so a dominant partition
// cannot crowd out rarer ones in a small pool. Then the final sample is drawn
// from the quota-capped pool by rotating across categories, which keeps small
// requests spread over the breadth the pool supports. Every request shuffles
// fresh; nothing is remembered between requests.
func SampleQuestions(db *gorm.DB, epicID uint, count int, filters SampleFilters) ([]uint, error) {
	query := db.Model(&models.Question{}).Where("epic_id = ?", epicID)
	if filters.Block != nil {
		query = query.Where("block_id = ?", filters.Block.ID)
	} else if filters.Kanda != nil {
		query = query.Where("kanda = ?", *filters.Kanda)
		if filters.Sarga != nil {
			query = query.Where("sarga = ?", *filters.Sarga)
		}
	}

	mixedDifficulty := filters.Difficulty == "" || filters.Difficulty == models.DifficultyMixed
	if !mixedDifficulty {
		query = query.Where("difficulty = ?", filters.Difficulty)
	}
	mixedCategory := filters.Category == "" || filters.Category == models.CategoryMixed
	if !mixedCategory {
		query = query.Where("category = ?", filters.Category)
	}

	var pool []models.Question
	if err := query.Select("id", "category", "difficulty").Find(&pool).Error; err != nil {
		return nil, err
	}

	need := count
	if need > minViableSample {
		need = minViableSample
	}
	if len(pool) < need {
		return nil, ErrInsufficientQuestions
	}

	capped := quotaCap(pool, count, mixedCategory, mixedDifficulty)

	n := count
	if n > len(pool) {
		n = len(pool)
	}
	ids := drawAcrossCategories(capped, n)

	// The quota pass can undershoot when partitions are uneven. The contract
	// is exactly min(count, pool size) questions, so top up from the rest of
	// the pool.
	if len(ids) < n {
		ids = topUp(ids, pool, n)
	}
	return ids, nil
}

// quotaCap shuffles each (category, difficulty) partition of the open
// dimensions and keeps at most quota rows per partition.
func quotaCap(pool []models.Question, count int, mixedCategory, mixedDifficulty bool) []models.Question {
	type cell struct{ category, difficulty string }
	partitions := make(map[cell][]models.Question)
	categories := make(map[string]struct{})
	difficulties := make(map[string]struct{})
	for _, q := range pool {
		key := cell{}
		if mixedCategory {
			key.category = q.Category
		}
		if mixedDifficulty {
			key.difficulty = q.Difficulty
		}
		partitions[key] = append(partitions[key], q)
		categories[q.Category] = struct{}{}
		difficulties[q.Difficulty] = struct{}{}
	}

	categoryCells, difficultyCells := 1, 1
	if mixedCategory {
		categoryCells = len(categories)
	}
	if mixedDifficulty {
		difficultyCells = len(difficulties)
	}
	quota := (count + categoryCells*difficultyCells - 1) / (categoryCells * difficultyCells)
	if quota < 1 {
		quota = 1
	}

	capped := make([]models.Question, 0, len(pool))
	for _, partition := range partitions {
		rand.Shuffle(len(partition), func(i, j int) {
			partition[i], partition[j] = partition[j], partition[i]
		})
		if len(partition) > quota {
			partition = partition[:quota]
		}
		capped = append(capped, partition...)
	}
	return capped
}

// drawAcrossCategories takes up to n questions from the capped pool, rotating
// over the category buckets in a random order so no single category swallows
// a small sample.
func drawAcrossCategories(capped []models.Question, n int) []uint {
	rand.Shuffle(len(capped), func(i, j int) {
		capped[i], capped[j] = capped[j], capped[i]
	})

	buckets := make(map[string][]models.Question)
	var order []string
	for _, q := range capped {
		if _, seen := buckets[q.Category]; !seen {
			order = append(order, q.Category)
		}
		buckets[q.Category] = append(buckets[q.Category], q)
	}
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	ids := make([]uint, 0, n)
	for len(ids) < n {
		progressed := false
		for _, category := range order {
			bucket := buckets[category]
			if len(bucket) == 0 {
				continue
			}
			ids = append(ids, bucket[0].ID)
			buckets[category] = bucket[1:]
			progressed = true
			if len(ids) == n {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return ids
}

// topUp fills the sample with random unused pool rows until it reaches n.
func topUp(ids []uint, pool []models.Question, n int) []uint {
	chosen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		chosen[id] = struct{}{}
	}

	rest := make([]models.Question, 0, len(pool)-len(ids))
	for _, q := range pool {
		if _, ok := chosen[q.ID]; !ok {
			rest = append(rest, q)
		}
	}
	rand.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	for _, q := range rest {
		if len(ids) == n {
			break
		}
		ids = append(ids, q.ID)
	}
	return ids
}
