package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/pkg/domain"
)

func TestDigestRepository_SaveAndGetLatest(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Second)
	digest := &domain.Digest{
		UserID: "alice",
		Articles: []domain.ScoredArticle{
			{
				Article: domain.Article{ID: 1, Title: "First", Category: "AI", Source: "TechDaily", PublishedAt: now.Add(-time.Hour)},
				Score:   0.82,
				Breakdown: domain.ScoreBreakdown{
					Topic: 0.9, Source: 0.5, Freshness: 0.95, Quality: 0.8, Diversity: 0.5,
				},
			},
			{
				Article: domain.Article{ID: 2, Title: "Second", Category: "Science", Source: "Nature", PublishedAt: now.Add(-2 * time.Hour)},
				Score:   0.71,
			},
		},
		PersonalizationScore: 0.765,
		DiversityScore:       1.0,
		GeneratedAt:          now,
	}

	require.NoError(t, repos.Digest.Save(context.Background(), digest))

	got, err := repos.Digest.GetLatest(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "alice", got.UserID)
	require.Len(t, got.Articles, 2)
	assert.Equal(t, "First", got.Articles[0].Title)
	assert.InDelta(t, 0.82, got.Articles[0].Score, 0.0001)
	assert.InDelta(t, 0.9, got.Articles[0].Breakdown.Topic, 0.0001)
	assert.Equal(t, "Second", got.Articles[1].Title)
	assert.InDelta(t, 0.765, got.PersonalizationScore, 0.0001)
	assert.InDelta(t, 1.0, got.DiversityScore, 0.0001)
	assert.True(t, got.GeneratedAt.Equal(now))
}

func TestDigestRepository_GetLatest(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("no digest returns nil", func(t *testing.T) {
		got, err := repos.Digest.GetLatest(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("latest wins", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		older := &domain.Digest{UserID: "bob", PersonalizationScore: 0.5, GeneratedAt: now.Add(-2 * time.Hour)}
		newer := &domain.Digest{UserID: "bob", PersonalizationScore: 0.7, GeneratedAt: now}
		require.NoError(t, repos.Digest.Save(context.Background(), older))
		require.NoError(t, repos.Digest.Save(context.Background(), newer))

		got, err := repos.Digest.GetLatest(context.Background(), "bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.InDelta(t, 0.7, got.PersonalizationScore, 0.0001)
	})

	t.Run("empty article list round trips", func(t *testing.T) {
		digest := &domain.Digest{UserID: "carol", GeneratedAt: time.Now().UTC()}
		require.NoError(t, repos.Digest.Save(context.Background(), digest))

		got, err := repos.Digest.GetLatest(context.Background(), "carol")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Articles)
	})
}

func TestDigestRepository_DeleteOld(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	fresh := &domain.Digest{UserID: "dave", GeneratedAt: now.Add(-time.Hour)}
	stale := &domain.Digest{UserID: "dave", GeneratedAt: now.Add(-10 * 24 * time.Hour)}
	require.NoError(t, repos.Digest.Save(context.Background(), fresh))
	require.NoError(t, repos.Digest.Save(context.Background(), stale))

	deleted, err := repos.Digest.DeleteOld(context.Background(), 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := repos.Digest.GetLatest(context.Background(), "dave")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.GeneratedAt.After(now.Add(-2*time.Hour)))
}
