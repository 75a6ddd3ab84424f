package domain

import "time"

// Interaction represents a single user interaction with an article,
// explicit (rating, save, dismiss) or implicit (open, read time)
type Interaction struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	ArticleID    int64     `json:"article_id"`
	Opened       bool      `json:"opened"`
	ReadDuration int       `json:"read_duration"` // seconds
	Rating       int       `json:"rating"`        // -1 dislike, 0 neutral, 1 like
	Saved        bool      `json:"saved"`
	Dismissed    bool      `json:"dismissed"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Signal is the learning signal derived from an interaction
type Signal string

// interaction signals, first matching classification wins
const (
	SignalPositive Signal = "positive"
	SignalNegative Signal = "negative"
	SignalNeutral  Signal = "neutral"
)

// ProfileSummary reports the profile changes caused by one interaction
type ProfileSummary struct {
	UserID       string  `json:"user_id"`
	Signal       Signal  `json:"signal"`
	Topic        string  `json:"topic,omitempty"`
	TopicWeight  float64 `json:"topic_weight,omitempty"`
	Source       string  `json:"source,omitempty"`
	SourceWeight float64 `json:"source_weight,omitempty"`
}

// InteractionStats aggregates per-user engagement history
type InteractionStats struct {
	TotalRead       int     `json:"total_read"`
	TotalSaved      int     `json:"total_saved"`
	TotalDismissed  int     `json:"total_dismissed"`
	AvgReadDuration float64 `json:"avg_read_duration"`
}
