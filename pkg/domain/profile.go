package domain

import "time"

// FreshnessMode controls how fast the freshness score decays
type FreshnessMode string

// supported freshness modes
const (
	FreshnessBreaking FreshnessMode = "breaking"
	FreshnessDaily    FreshnessMode = "daily"
	FreshnessWeekly   FreshnessMode = "weekly"
)

// Valid reports whether the mode is one of the supported values
func (m FreshnessMode) Valid() bool {
	return m == FreshnessBreaking || m == FreshnessDaily || m == FreshnessWeekly
}

// NeutralWeight is the weight assumed for topics and sources the user
// never expressed interest in.
const NeutralWeight = 0.5

// default profile settings for users without explicit preferences
const (
	DefaultDailyLimit     = 10
	DefaultDiversityBoost = 0.1
	seedSelectedWeight    = 0.9
)

// Profile holds per-user weighted interest state. All weights stay in [0,1].
// TopicUpdated/SourceUpdated track the last time each weight key changed,
// driving the decay of stale interests.
type Profile struct {
	UserID         string               `json:"user_id"`
	TopicWeights   map[string]float64   `json:"topic_weights"`
	SourceWeights  map[string]float64   `json:"source_weights"`
	TopicUpdated   map[string]time.Time `json:"topic_updated,omitempty"`
	SourceUpdated  map[string]time.Time `json:"source_updated,omitempty"`
	ExcludeTopics  []string             `json:"exclude_topics,omitempty"`
	ExcludeSources []string             `json:"exclude_sources,omitempty"`
	FreshnessMode  FreshnessMode        `json:"freshness_mode"`
	DiversityBoost float64              `json:"diversity_boost"`
	DailyLimit     int                  `json:"daily_limit"`
	AutoAdjust     bool                 `json:"auto_adjust"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// NewProfile creates a profile with neutral defaults
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:         userID,
		TopicWeights:   map[string]float64{},
		SourceWeights:  map[string]float64{},
		TopicUpdated:   map[string]time.Time{},
		SourceUpdated:  map[string]time.Time{},
		FreshnessMode:  FreshnessDaily,
		DiversityBoost: DefaultDiversityBoost,
		DailyLimit:     DefaultDailyLimit,
		AutoAdjust:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SeedTopics applies onboarding selections, selected topics start at 0.9
func (p *Profile) SeedTopics(topics []string, now time.Time) {
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		p.TopicWeights[topic] = seedSelectedWeight
		p.TopicUpdated[topic] = now
	}
	p.UpdatedAt = now
}

// TopicWeight returns the weight for a category, neutral if unknown
func (p *Profile) TopicWeight(category string) float64 {
	if w, ok := p.TopicWeights[category]; ok {
		return w
	}
	return NeutralWeight
}

// SourceWeight returns the weight for a source, neutral if unknown
func (p *Profile) SourceWeight(source string) float64 {
	if w, ok := p.SourceWeights[source]; ok {
		return w
	}
	return NeutralWeight
}

// TopicExcluded reports whether the category is on the exclusion list
func (p *Profile) TopicExcluded(category string) bool {
	for _, t := range p.ExcludeTopics {
		if t == category {
			return true
		}
	}
	return false
}

// SourceExcluded reports whether the source is on the exclusion list
func (p *Profile) SourceExcluded(source string) bool {
	for _, s := range p.ExcludeSources {
		if s == source {
			return true
		}
	}
	return false
}

// Normalize clamps weights into [0,1] and fixes out-of-range settings.
// Invalid input never fails a request, it gets corrected silently.
func (p *Profile) Normalize() {
	if p.TopicWeights == nil {
		p.TopicWeights = map[string]float64{}
	}
	if p.SourceWeights == nil {
		p.SourceWeights = map[string]float64{}
	}
	if p.TopicUpdated == nil {
		p.TopicUpdated = map[string]time.Time{}
	}
	if p.SourceUpdated == nil {
		p.SourceUpdated = map[string]time.Time{}
	}
	for k, v := range p.TopicWeights {
		p.TopicWeights[k] = clampWeight(v)
	}
	for k, v := range p.SourceWeights {
		p.SourceWeights[k] = clampWeight(v)
	}
	p.DiversityBoost = clampWeight(p.DiversityBoost)
	if p.DailyLimit < 1 {
		p.DailyLimit = DefaultDailyLimit
	}
	if !p.FreshnessMode.Valid() {
		p.FreshnessMode = FreshnessDaily
	}
}

func clampWeight(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clone returns a deep copy, safe to mutate without affecting the original
func (p *Profile) Clone() *Profile {
	clone := *p
	clone.TopicWeights = make(map[string]float64, len(p.TopicWeights))
	for k, v := range p.TopicWeights {
		clone.TopicWeights[k] = v
	}
	clone.SourceWeights = make(map[string]float64, len(p.SourceWeights))
	for k, v := range p.SourceWeights {
		clone.SourceWeights[k] = v
	}
	clone.TopicUpdated = make(map[string]time.Time, len(p.TopicUpdated))
	for k, v := range p.TopicUpdated {
		clone.TopicUpdated[k] = v
	}
	clone.SourceUpdated = make(map[string]time.Time, len(p.SourceUpdated))
	for k, v := range p.SourceUpdated {
		clone.SourceUpdated[k] = v
	}
	clone.ExcludeTopics = append([]string(nil), p.ExcludeTopics...)
	clone.ExcludeSources = append([]string(nil), p.ExcludeSources...)
	return &clone
}
