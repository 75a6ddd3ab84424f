package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/pkg/domain"
)

func TestClassifySignal(t *testing.T) {
	tests := []struct {
		name string
		ev   domain.Interaction
		want domain.Signal
	}{
		{"explicit like", domain.Interaction{Rating: 1, ReadDuration: 10}, domain.SignalPositive},
		{"long read", domain.Interaction{ReadDuration: 60}, domain.SignalPositive},
		{"saved", domain.Interaction{Saved: true}, domain.SignalPositive},
		{"saved beats quick bounce", domain.Interaction{Saved: true, ReadDuration: 2}, domain.SignalPositive},
		{"like beats dismiss", domain.Interaction{Rating: 1, Dismissed: true, ReadDuration: 30}, domain.SignalPositive},
		{"explicit dislike", domain.Interaction{Rating: -1, ReadDuration: 30}, domain.SignalNegative},
		{"quick bounce", domain.Interaction{ReadDuration: 3}, domain.SignalNegative},
		{"dismissed", domain.Interaction{ReadDuration: 30, Dismissed: true}, domain.SignalNegative},
		{"plain read", domain.Interaction{Opened: true, ReadDuration: 30}, domain.SignalNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySignal(tt.ev))
		})
	}
}

func TestApply_Positive(t *testing.T) {
	now := time.Now()

	t.Run("like reinforces topic and source", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		ev := domain.Interaction{ArticleID: 1, Rating: 1, ReadDuration: 30}

		summary := Apply(profile, "AI", "TechCrunch", ev, now)

		assert.Equal(t, domain.SignalPositive, summary.Signal)
		assert.InDelta(t, 0.55, profile.TopicWeights["AI"], 0.0001)
		assert.InDelta(t, 0.53, profile.SourceWeights["TechCrunch"], 0.0001)
		assert.Equal(t, now, profile.TopicUpdated["AI"])
		assert.Equal(t, now, profile.SourceUpdated["TechCrunch"])
	})

	t.Run("saved adds one-time topic bonus", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		ev := domain.Interaction{ArticleID: 1, Saved: true}

		Apply(profile, "AI", "X", ev, now)
		assert.InDelta(t, 0.65, profile.TopicWeights["AI"], 0.0001, "0.05 reinforce + 0.10 saved bonus")
	})

	t.Run("weights clamp at 1", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["AI"] = 0.98
		ev := domain.Interaction{ArticleID: 1, Saved: true, Rating: 1}

		Apply(profile, "AI", "X", ev, now)
		assert.InDelta(t, 1.0, profile.TopicWeights["AI"], 0.0001)
	})
}

func TestApply_Negative(t *testing.T) {
	now := time.Now()

	t.Run("dislike on neutral topic", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		ev := domain.Interaction{ArticleID: 1, Rating: -1, ReadDuration: 30}

		summary := Apply(profile, "Crypto", "X", ev, now)

		assert.Equal(t, domain.SignalNegative, summary.Signal)
		assert.InDelta(t, 0.42, profile.TopicWeights["Crypto"], 0.0001)
		assert.InDelta(t, 0.42, summary.TopicWeight, 0.0001)
		assert.NotContains(t, profile.SourceWeights, "X", "negative signal leaves source alone")
	})

	t.Run("penalty exceeds reward", func(t *testing.T) {
		assert.Greater(t, topicPenaltyRate, topicReinforceRate)
	})

	t.Run("weights clamp at 0", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["Crypto"] = 0.05
		ev := domain.Interaction{ArticleID: 1, Rating: -1, ReadDuration: 30}

		Apply(profile, "Crypto", "X", ev, now)
		assert.InDelta(t, 0.0, profile.TopicWeights["Crypto"], 0.0001)
	})
}

func TestApply_Neutral(t *testing.T) {
	now := time.Now()
	profile := domain.NewProfile("u1", now)
	ev := domain.Interaction{ArticleID: 1, Opened: true, ReadDuration: 30}

	summary := Apply(profile, "AI", "X", ev, now)

	assert.Equal(t, domain.SignalNeutral, summary.Signal)
	assert.Empty(t, profile.TopicWeights)
	assert.Empty(t, profile.SourceWeights)
	assert.Empty(t, profile.TopicUpdated, "neutral must not advance weight timestamps")
}

func TestApply_ReadDurationMonotonic(t *testing.T) {
	now := time.Now()

	deltaFor := func(duration int) float64 {
		profile := domain.NewProfile("u1", now)
		Apply(profile, "AI", "X", domain.Interaction{ArticleID: 1, ReadDuration: duration}, now)
		return profile.TopicWeight("AI") - domain.NeutralWeight
	}

	prev := deltaFor(3)
	for _, duration := range []int{5, 30, 60, 120} {
		cur := deltaFor(duration)
		assert.GreaterOrEqual(t, cur, prev, "delta must not decrease as read duration grows (%ds)", duration)
		prev = cur
	}
}

func TestDecay(t *testing.T) {
	now := time.Now()

	t.Run("stale weights move toward neutral", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["AI"] = 0.9
		profile.TopicUpdated["AI"] = now.Add(-8 * 24 * time.Hour)
		profile.SourceWeights["X"] = 0.2
		profile.SourceUpdated["X"] = now.Add(-8 * 24 * time.Hour)

		changed := Decay(profile, now)

		assert.Equal(t, 2, changed)
		assert.InDelta(t, 0.9+(0.5-0.9)*0.05, profile.TopicWeights["AI"], 0.0001)
		assert.InDelta(t, 0.2+(0.5-0.2)*0.05, profile.SourceWeights["X"], 0.0001)
		assert.Equal(t, now, profile.TopicUpdated["AI"])
	})

	t.Run("fresh weights untouched", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["AI"] = 0.9
		profile.TopicUpdated["AI"] = now.Add(-2 * 24 * time.Hour)

		changed := Decay(profile, now)

		assert.Zero(t, changed)
		assert.InDelta(t, 0.9, profile.TopicWeights["AI"], 0.0001)
	})

	t.Run("idempotent within interval", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["AI"] = 0.9
		profile.TopicUpdated["AI"] = now.Add(-8 * 24 * time.Hour)

		require.Equal(t, 1, Decay(profile, now))
		after := profile.TopicWeights["AI"]

		require.Zero(t, Decay(profile, now), "second sweep with same now is a no-op")
		assert.Equal(t, after, profile.TopicWeights["AI"])
	})

	t.Run("auto adjust off disables decay", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.AutoAdjust = false
		profile.TopicWeights["AI"] = 0.9
		profile.TopicUpdated["AI"] = now.Add(-30 * 24 * time.Hour)

		assert.Zero(t, Decay(profile, now))
		assert.InDelta(t, 0.9, profile.TopicWeights["AI"], 0.0001)
	})

	t.Run("key without history gets clock started", func(t *testing.T) {
		profile := domain.NewProfile("u1", now)
		profile.TopicWeights["AI"] = 0.9 // no TopicUpdated entry

		assert.Zero(t, Decay(profile, now))
		assert.InDelta(t, 0.9, profile.TopicWeights["AI"], 0.0001)
		assert.Equal(t, now, profile.TopicUpdated["AI"])

		// once the clock runs past the stale threshold the key decays
		later := now.Add(8 * 24 * time.Hour)
		assert.Equal(t, 1, Decay(profile, later))
	})
}
