package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/digesto/pkg/domain"
)

// ArticleRepository handles candidate article persistence
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// articleRow is the database representation of an article
type articleRow struct {
	ID          int64           `db:"id"`
	GUID        string          `db:"guid"`
	Title       string          `db:"title"`
	URL         string          `db:"url"`
	Category    string          `db:"category"`
	Source      string          `db:"source"`
	Summary     string          `db:"summary"`
	Quality     sql.NullFloat64 `db:"quality"`
	PublishedAt time.Time       `db:"published_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Create inserts an article, updating the existing row on GUID conflict.
// The id of the stored article is written back to the argument.
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	row := r.toRow(article)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (guid, title, url, category, source, summary, quality, published_at)
			VALUES (:guid, :title, :url, :category, :source, :summary, :quality, :published_at)
			ON CONFLICT(guid) DO UPDATE SET
				title = excluded.title,
				url = excluded.url,
				category = excluded.category,
				source = excluded.source,
				summary = excluded.summary,
				quality = excluded.quality,
				published_at = excluded.published_at
		`
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// upsert may update an existing row, read the id back by guid
	var id int64
	if err := r.db.GetContext(ctx, &id, "SELECT id FROM articles WHERE guid = ?", article.GUID); err != nil {
		return fmt.Errorf("get article id: %w", err)
	}
	article.ID = id
	return nil
}

// Get retrieves an article by id, nil if not found
func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var row articleRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&row), nil
}

// GetRecent retrieves articles published after the given time, newest first
func (r *ArticleRepository) GetRecent(ctx context.Context, since time.Time, limit int) ([]domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE published_at > ?
		ORDER BY published_at DESC, id ASC
		LIMIT ?
	`
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, since, limit); err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}

	articles := make([]domain.Article, len(rows))
	for i, row := range rows {
		articles[i] = *r.toDomainArticle(&row)
	}
	return articles, nil
}

// DeleteOld removes articles published before the retention window
func (r *ArticleRepository) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE published_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old articles: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return affected, nil
}

func (r *ArticleRepository) toRow(article *domain.Article) *articleRow {
	row := &articleRow{
		ID:          article.ID,
		GUID:        article.GUID,
		Title:       article.Title,
		URL:         article.URL,
		Category:    article.Category,
		Source:      article.Source,
		Summary:     article.Summary,
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
	}
	if article.Quality != nil {
		row.Quality = sql.NullFloat64{Float64: *article.Quality, Valid: true}
	}
	return row
}

func (r *ArticleRepository) toDomainArticle(row *articleRow) *domain.Article {
	article := &domain.Article{
		ID:          row.ID,
		GUID:        row.GUID,
		Title:       row.Title,
		URL:         row.URL,
		Category:    row.Category,
		Source:      row.Source,
		Summary:     row.Summary,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
	}
	if row.Quality.Valid {
		quality := row.Quality.Float64
		article.Quality = &quality
	}
	return article
}
