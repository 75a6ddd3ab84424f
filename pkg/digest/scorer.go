package digest

import (
	"math"
	"time"

	"github.com/umputun/digesto/pkg/domain"
)

// factor weights, fixed and summing to 1.0. The freshness mode changes the
// decay half-life only, never the weight itself, so the sum stays invariant.
const (
	weightTopic     = 0.35
	weightSource    = 0.20
	weightFreshness = 0.25
	weightQuality   = 0.15
	weightDiversity = 0.05
)

// neutralQuality is assumed when no critique score is available
const neutralQuality = 5.0

// freshness half-life in hours per mode
const (
	halfLifeBreaking = 6.0
	halfLifeDaily    = 24.0
	halfLifeWeekly   = 168.0
)

// ScoreBatch scores every article against the profile. The diversity term is
// computed over the batch itself, rewarding categories underrepresented in the
// candidate set. Pure function, safe for concurrent use.
func ScoreBatch(articles []domain.Article, profile *domain.Profile, now time.Time) []domain.ScoredArticle {
	scored := make([]domain.ScoredArticle, len(articles))
	if len(articles) == 0 {
		return scored
	}

	counts := make(map[string]int, len(articles))
	for _, a := range articles {
		counts[a.Category]++
	}

	for i, a := range articles {
		diversity := 1 - float64(counts[a.Category])/float64(len(articles))
		score, breakdown := Score(a, profile, now, diversity)
		scored[i] = domain.ScoredArticle{Article: a, Score: score, Breakdown: breakdown}
	}
	return scored
}

// Score computes the weighted personalization score for a single article.
// Unknown categories and sources fall back to the neutral weight, missing
// quality to 5/10, unknown publish time to a neutral 0.5 freshness.
func Score(article domain.Article, profile *domain.Profile, now time.Time, diversityTerm float64) (float64, domain.ScoreBreakdown) {
	breakdown := domain.ScoreBreakdown{
		Topic:     profile.TopicWeight(article.Category),
		Source:    profile.SourceWeight(article.Source),
		Freshness: freshnessScore(article.PublishedAt, profile.FreshnessMode, now),
		Quality:   qualityScore(article.Quality),
		Diversity: clamp(diversityTerm, 0, 1),
	}

	score := breakdown.Topic*weightTopic +
		breakdown.Source*weightSource +
		breakdown.Freshness*weightFreshness +
		breakdown.Quality*weightQuality +
		breakdown.Diversity*weightDiversity

	return clamp(score, 0, 1), breakdown
}

// freshnessScore decays exponentially with age, exp(-age_hours / half_life)
func freshnessScore(published time.Time, mode domain.FreshnessMode, now time.Time) float64 {
	if published.IsZero() {
		return 0.5
	}
	ageHours := now.Sub(published).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return clamp(math.Exp(-ageHours/halfLife(mode)), 0, 1)
}

func halfLife(mode domain.FreshnessMode) float64 {
	switch mode {
	case domain.FreshnessBreaking:
		return halfLifeBreaking
	case domain.FreshnessWeekly:
		return halfLifeWeekly
	default:
		return halfLifeDaily
	}
}

func qualityScore(quality *float64) float64 {
	v := neutralQuality
	if quality != nil {
		v = *quality
	}
	return clamp(v, 0, 10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
