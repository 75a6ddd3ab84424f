package digest

import (
	"time"

	"github.com/umputun/digesto/pkg/domain"
)

// learning rates. The penalty is deliberately larger than the reward so a
// topic takes longer to climb than to fall, resisting filter-bubble
// reinforcement.
const (
	topicReinforceRate  = 0.05
	topicPenaltyRate    = 0.08
	sourceReinforceRate = 0.03
	savedTopicBonus     = 0.10
)

// interaction thresholds in seconds
const (
	longReadSeconds = 60
	bounceSeconds   = 5
)

// decay parameters, weights untouched for a week drift 5% toward neutral
const (
	decayStaleAfter = 7 * 24 * time.Hour
	decayRate       = 0.05
)

// ClassifySignal derives the learning signal from an interaction,
// first matching rule wins
func ClassifySignal(ev domain.Interaction) domain.Signal {
	switch {
	case ev.Rating > 0 || ev.ReadDuration >= longReadSeconds || ev.Saved:
		return domain.SignalPositive
	case ev.Rating < 0 || (ev.ReadDuration < bounceSeconds && !ev.Saved) || ev.Dismissed:
		return domain.SignalNegative
	}
	return domain.SignalNeutral
}

// Apply mutates the profile weights for the article's category and source
// according to the interaction signal. Weights are clamped to [0,1] and the
// per-key update timestamps advance for every changed weight. Neutral signals
// leave the profile untouched.
func Apply(profile *domain.Profile, category, source string, ev domain.Interaction, now time.Time) domain.ProfileSummary {
	summary := domain.ProfileSummary{UserID: profile.UserID, Signal: ClassifySignal(ev)}

	switch summary.Signal {
	case domain.SignalPositive:
		rating := ev.Rating
		if rating < 1 {
			rating = 1
		}
		delta := topicReinforceRate * float64(rating)
		if ev.Saved {
			delta += savedTopicBonus
		}
		summary.Topic = category
		summary.TopicWeight = bumpWeight(profile.TopicWeights, profile.TopicUpdated, category, delta, now)
		summary.Source = source
		summary.SourceWeight = bumpWeight(profile.SourceWeights, profile.SourceUpdated, source, sourceReinforceRate, now)
		profile.UpdatedAt = now
	case domain.SignalNegative:
		summary.Topic = category
		summary.TopicWeight = bumpWeight(profile.TopicWeights, profile.TopicUpdated, category, -topicPenaltyRate, now)
		profile.UpdatedAt = now
	}

	return summary
}

// Decay relaxes weights not reinforced for decayStaleAfter toward the neutral
// 0.5 and resets their timestamps, making a repeated sweep within the same
// interval a no-op. Profiles with auto-adjust disabled are skipped entirely.
// Returns the number of decayed keys.
func Decay(profile *domain.Profile, now time.Time) int {
	if !profile.AutoAdjust {
		return 0
	}
	changed := decayWeights(profile.TopicWeights, profile.TopicUpdated, now)
	changed += decayWeights(profile.SourceWeights, profile.SourceUpdated, now)
	if changed > 0 {
		profile.UpdatedAt = now
	}
	return changed
}

func decayWeights(weights map[string]float64, updated map[string]time.Time, now time.Time) int {
	changed := 0
	for key, w := range weights {
		ts, ok := updated[key]
		if !ok {
			// no history for this key, start its clock without touching the weight
			updated[key] = now
			continue
		}
		if now.Sub(ts) < decayStaleAfter {
			continue
		}
		weights[key] = w + (domain.NeutralWeight-w)*decayRate
		updated[key] = now
		changed++
	}
	return changed
}

func bumpWeight(weights map[string]float64, updated map[string]time.Time, key string, delta float64, now time.Time) float64 {
	w, ok := weights[key]
	if !ok {
		w = domain.NeutralWeight
	}
	w = clamp(w+delta, 0, 1)
	weights[key] = w
	updated[key] = now
	return w
}
