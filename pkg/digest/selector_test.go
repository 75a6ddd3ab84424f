package digest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/pkg/domain"
)

func scoredArticle(id int64, category string, score float64, published time.Time) domain.ScoredArticle {
	return domain.ScoredArticle{
		Article: domain.Article{ID: id, Category: category, Source: "src", PublishedAt: published},
		Score:   score,
	}
}

func TestSelect_OrderAndLimit(t *testing.T) {
	now := time.Now()
	scored := []domain.ScoredArticle{
		scoredArticle(1, "AI", 0.5, now),
		scoredArticle(2, "Science", 0.9, now),
		scoredArticle(3, "Crypto", 0.7, now),
	}

	selected := Select(scored, 2, 0)
	require.Len(t, selected, 2)
	assert.Equal(t, int64(2), selected[0].ID)
	assert.Equal(t, int64(3), selected[1].ID)
}

func TestSelect_TieBreaks(t *testing.T) {
	now := time.Now()

	t.Run("published desc breaks score ties", func(t *testing.T) {
		scored := []domain.ScoredArticle{
			scoredArticle(1, "AI", 0.5, now.Add(-2*time.Hour)),
			scoredArticle(2, "Science", 0.5, now.Add(-1*time.Hour)),
		}
		selected := Select(scored, 2, 0)
		require.Len(t, selected, 2)
		assert.Equal(t, int64(2), selected[0].ID)
	})

	t.Run("id asc breaks full ties", func(t *testing.T) {
		scored := []domain.ScoredArticle{
			scoredArticle(5, "AI", 0.5, now),
			scoredArticle(2, "AI", 0.5, now),
			scoredArticle(9, "AI", 0.5, now),
		}
		selected := Select(scored, 3, 0)
		require.Len(t, selected, 3)
		assert.Equal(t, int64(2), selected[0].ID)
		assert.Equal(t, int64(5), selected[1].ID)
		assert.Equal(t, int64(9), selected[2].ID)
	})
}

func TestSelect_DiversityCap(t *testing.T) {
	now := time.Now()

	t.Run("full boost caps one per category", func(t *testing.T) {
		var scored []domain.ScoredArticle
		for i := 0; i < 12; i++ {
			scored = append(scored, scoredArticle(int64(i+1), fmt.Sprintf("cat-%d", i), 0.9-float64(i)*0.01, now))
		}
		// add extra high-scoring duplicates of the first category
		scored = append(scored, scoredArticle(100, "cat-0", 0.95, now))

		selected := Select(scored, 10, 1.0)
		require.Len(t, selected, 10)

		categories := make(map[string]int)
		for _, a := range selected {
			categories[a.Category]++
		}
		assert.Len(t, categories, 10, "10 distinct categories at cap 1")
		for cat, n := range categories {
			assert.Equal(t, 1, n, "category %s over cap", cat)
		}
	})

	t.Run("cap relaxed when too few alternatives", func(t *testing.T) {
		scored := []domain.ScoredArticle{
			scoredArticle(1, "AI", 0.9, now),
			scoredArticle(2, "AI", 0.8, now),
			scoredArticle(3, "AI", 0.7, now),
			scoredArticle(4, "Science", 0.6, now),
		}
		selected := Select(scored, 4, 1.0)
		require.Len(t, selected, 4, "relaxation returns everything available")

		// capped walk picks one per category first, deferred fill the rest
		assert.Equal(t, int64(1), selected[0].ID)
		assert.Equal(t, int64(4), selected[1].ID)
		assert.Equal(t, int64(2), selected[2].ID)
		assert.Equal(t, int64(3), selected[3].ID)
	})

	t.Run("no boost means no category constraint", func(t *testing.T) {
		scored := []domain.ScoredArticle{
			scoredArticle(1, "AI", 0.9, now),
			scoredArticle(2, "AI", 0.8, now),
			scoredArticle(3, "AI", 0.7, now),
		}
		selected := Select(scored, 3, 0)
		require.Len(t, selected, 3)
	})
}

func TestSelect_NoDuplicates(t *testing.T) {
	now := time.Now()
	var scored []domain.ScoredArticle
	for i := 0; i < 30; i++ {
		scored = append(scored, scoredArticle(int64(i+1), fmt.Sprintf("cat-%d", i%3), float64(i%7)/10, now))
	}

	selected := Select(scored, 10, 0.5)
	require.Len(t, selected, 10)

	seen := make(map[int64]bool)
	for _, a := range selected {
		assert.False(t, seen[a.ID], "duplicate id %d", a.ID)
		seen[a.ID] = true
	}
}

func TestSelect_Edges(t *testing.T) {
	now := time.Now()

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Select(nil, 10, 0.5))
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Empty(t, Select([]domain.ScoredArticle{scoredArticle(1, "AI", 0.5, now)}, 0, 0.5))
	})

	t.Run("fewer candidates than limit", func(t *testing.T) {
		scored := []domain.ScoredArticle{scoredArticle(1, "AI", 0.5, now)}
		assert.Len(t, Select(scored, 10, 0.5), 1)
	})

	t.Run("cap never below one", func(t *testing.T) {
		scored := []domain.ScoredArticle{
			scoredArticle(1, "AI", 0.9, now),
			scoredArticle(2, "Science", 0.8, now),
		}
		selected := Select(scored, 1, 1.0)
		require.Len(t, selected, 1)
		assert.Equal(t, int64(1), selected[0].ID)
	})
}

func TestSelect_Deterministic(t *testing.T) {
	now := time.Now()
	var scored []domain.ScoredArticle
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredArticle(int64(i+1), fmt.Sprintf("cat-%d", i%4), float64(i%5)/10, now.Add(-time.Duration(i)*time.Minute)))
	}

	first := Select(scored, 10, 0.3)
	for i := 0; i < 5; i++ {
		again := Select(scored, 10, 0.3)
		require.Equal(t, first, again, "selection must be deterministic")
	}
}
