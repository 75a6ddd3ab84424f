package digest

import (
	"sort"

	"github.com/umputun/digesto/pkg/domain"
)

// Select picks up to limit articles from the scored candidates, bounding how
// many articles may share one category. The cap is max(1, floor(limit *
// (1-diversityBoost))): boost 0 means no constraint beyond the limit, boost 1
// means one article per category. Candidates skipped by the cap are kept in
// order and used to fill the digest when too few alternatives remain, so the
// result size is always min(limit, len(scored)).
//
// Ordering is deterministic: score descending, publish time descending, then
// id ascending.
func Select(scored []domain.ScoredArticle, limit int, diversityBoost float64) []domain.ScoredArticle {
	if limit <= 0 || len(scored) == 0 {
		return []domain.ScoredArticle{}
	}

	sorted := make([]domain.ScoredArticle, len(scored))
	copy(sorted, scored)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if !sorted[i].PublishedAt.Equal(sorted[j].PublishedAt) {
			return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	categoryCap := int(float64(limit) * (1 - clamp(diversityBoost, 0, 1)))
	if categoryCap < 1 {
		categoryCap = 1
	}

	selected := make([]domain.ScoredArticle, 0, limit)
	perCategory := make(map[string]int)
	var deferred []domain.ScoredArticle

	for _, a := range sorted {
		if len(selected) == limit {
			break
		}
		if perCategory[a.Category] >= categoryCap {
			deferred = append(deferred, a)
			continue
		}
		selected = append(selected, a)
		perCategory[a.Category]++
	}

	// relax the cap when the capped walk couldn't fill the digest
	for _, a := range deferred {
		if len(selected) == limit {
			break
		}
		selected = append(selected, a)
	}

	return selected
}
