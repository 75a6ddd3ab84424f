package domain

import "time"

// Article represents a candidate article supplied by the ingestion side.
// Quality is the precomputed critique score on a 0-10 scale; nil means
// no critique is available and scoring treats it as neutral.
type Article struct {
	ID          int64     `json:"id"`
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	Quality     *float64  `json:"quality,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoreBreakdown holds the per-factor components of an article score
type ScoreBreakdown struct {
	Topic     float64 `json:"topic"`
	Source    float64 `json:"source"`
	Freshness float64 `json:"freshness"`
	Quality   float64 `json:"quality"`
	Diversity float64 `json:"diversity"`
}

// ScoredArticle is an article with its personalization score attached
type ScoredArticle struct {
	Article
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Digest is the result of one digest generation, immutable after creation
type Digest struct {
	UserID               string          `json:"user_id"`
	Articles             []ScoredArticle `json:"articles"`
	PersonalizationScore float64         `json:"personalization_score"`
	DiversityScore       float64         `json:"diversity_score"`
	GeneratedAt          time.Time       `json:"generated_at"`
}
