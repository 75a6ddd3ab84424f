package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/pkg/domain"
)

func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "digesto-test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN:             "file:" + tmpFile.Name() + "?mode=rwc",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err = NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	cleanup = func() {
		repos.Close()
		os.Remove(tmpFile.Name())
	}

	return repos, cleanup
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repos.Ping(context.Background()))

	t.Run("schema created", func(t *testing.T) {
		var count int
		err := repos.DB.Get(&count, `
			SELECT COUNT(*) FROM sqlite_master
			WHERE type='table' AND name IN ('articles', 'profiles', 'interactions', 'digests')
		`)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("article round trip", func(t *testing.T) {
		quality := 8.0
		article := &domain.Article{
			GUID:        "guid-1",
			Title:       "AI breakthrough",
			URL:         "https://example.com/ai",
			Category:    "AI",
			Source:      "TechDaily",
			Summary:     "short summary",
			Quality:     &quality,
			PublishedAt: time.Now().Add(-time.Hour).UTC(),
		}
		require.NoError(t, repos.Article.Create(context.Background(), article))
		assert.NotZero(t, article.ID)

		got, err := repos.Article.Get(context.Background(), article.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "AI breakthrough", got.Title)
		require.NotNil(t, got.Quality)
		assert.InDelta(t, 8.0, *got.Quality, 0.0001)
	})

	t.Run("profile and interaction for same user", func(t *testing.T) {
		profile, err := repos.Profile.GetOrCreate(context.Background(), "u1")
		require.NoError(t, err)

		profile.TopicWeights["AI"] = 0.7
		require.NoError(t, repos.Profile.Save(context.Background(), profile))

		ev := &domain.Interaction{
			UserID:     "u1",
			ArticleID:  1,
			Opened:     true,
			Rating:     1,
			OccurredAt: time.Now().UTC(),
		}
		require.NoError(t, repos.Interaction.Create(context.Background(), ev))
		assert.NotZero(t, ev.ID)
	})
}

func TestRepositories_DefaultDSN(t *testing.T) {
	// default DSN points at a file in the working directory, use a temp dir
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	repos, err := NewRepositories(context.Background(), Config{})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Ping(context.Background()))
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"busy error", assert.AnError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockError(tt.err))
		})
	}

	t.Run("lock messages", func(t *testing.T) {
		assert.True(t, isLockError(errSQLite("SQLITE_BUSY: database is busy")))
		assert.True(t, isLockError(errSQLite("database is locked")))
		assert.True(t, isLockError(errSQLite("database table is locked")))
		assert.False(t, isLockError(errSQLite("constraint failed")))
	})
}

type errSQLite string

func (e errSQLite) Error() string { return string(e) }
