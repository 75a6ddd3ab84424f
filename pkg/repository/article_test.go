package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/pkg/domain"
)

func TestArticleRepository_Create(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	quality := 7.5
	article := &domain.Article{
		GUID:        "guid-create",
		Title:       "Original title",
		URL:         "https://example.com/1",
		Category:    "Tech",
		Source:      "TechDaily",
		Summary:     "summary",
		Quality:     &quality,
		PublishedAt: time.Now().Add(-2 * time.Hour).UTC(),
	}

	require.NoError(t, repos.Article.Create(context.Background(), article))
	assert.NotZero(t, article.ID)

	t.Run("same guid updates in place", func(t *testing.T) {
		firstID := article.ID

		updated := &domain.Article{
			GUID:        "guid-create",
			Title:       "Updated title",
			URL:         "https://example.com/1",
			Category:    "Tech",
			Source:      "TechDaily",
			PublishedAt: article.PublishedAt,
		}
		require.NoError(t, repos.Article.Create(context.Background(), updated))
		assert.Equal(t, firstID, updated.ID)

		got, err := repos.Article.Get(context.Background(), firstID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Updated title", got.Title)
		assert.Nil(t, got.Quality) // update cleared the quality score
	})
}

func TestArticleRepository_Get(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("missing article returns nil", func(t *testing.T) {
		got, err := repos.Article.Get(context.Background(), 12345)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nil quality survives round trip", func(t *testing.T) {
		article := &domain.Article{
			GUID:        "guid-noquality",
			Title:       "Unrated",
			PublishedAt: time.Now().UTC(),
		}
		require.NoError(t, repos.Article.Create(context.Background(), article))

		got, err := repos.Article.Get(context.Background(), article.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Quality)
	})
}

func TestArticleRepository_GetRecent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		article := &domain.Article{
			GUID:        fmt.Sprintf("guid-recent-%d", i),
			Title:       fmt.Sprintf("Article %d", i),
			Category:    "Tech",
			Source:      "TechDaily",
			PublishedAt: now.Add(-time.Duration(i*10) * time.Hour), // 0h, 10h, ... 40h old
		}
		require.NoError(t, repos.Article.Create(context.Background(), article))
	}

	t.Run("window bounds candidates", func(t *testing.T) {
		articles, err := repos.Article.GetRecent(context.Background(), now.Add(-25*time.Hour), 100)
		require.NoError(t, err)
		require.Len(t, articles, 3) // 0h, 10h, 20h old

		// newest first
		assert.Equal(t, "Article 0", articles[0].Title)
		assert.Equal(t, "Article 1", articles[1].Title)
		assert.Equal(t, "Article 2", articles[2].Title)
	})

	t.Run("limit caps the batch", func(t *testing.T) {
		articles, err := repos.Article.GetRecent(context.Background(), now.Add(-100*time.Hour), 2)
		require.NoError(t, err)
		assert.Len(t, articles, 2)
		assert.Equal(t, "Article 0", articles[0].Title)
	})

	t.Run("empty window", func(t *testing.T) {
		articles, err := repos.Article.GetRecent(context.Background(), now.Add(time.Hour), 100)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleRepository_DeleteOld(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	fresh := &domain.Article{GUID: "guid-fresh", Title: "Fresh", PublishedAt: now.Add(-time.Hour)}
	stale := &domain.Article{GUID: "guid-stale", Title: "Stale", PublishedAt: now.Add(-40 * 24 * time.Hour)}
	require.NoError(t, repos.Article.Create(context.Background(), fresh))
	require.NoError(t, repos.Article.Create(context.Background(), stale))

	deleted, err := repos.Article.DeleteOld(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := repos.Article.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repos.Article.Get(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
