package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/digesto/pkg/domain"
)

// InteractionRepository handles interaction event persistence
type InteractionRepository struct {
	db *sqlx.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// interactionRow is the database representation of an interaction event
type interactionRow struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_id"`
	ArticleID    int64     `db:"article_id"`
	Opened       bool      `db:"opened"`
	ReadDuration int       `db:"read_duration"`
	Rating       int       `db:"rating"`
	Saved        bool      `db:"saved"`
	Dismissed    bool      `db:"dismissed"`
	OccurredAt   time.Time `db:"occurred_at"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create records an interaction event, retrying on sqlite lock errors
func (r *InteractionRepository) Create(ctx context.Context, ev *domain.Interaction) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO interactions (user_id, article_id, opened, read_duration, rating, saved, dismissed, occurred_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`
		result, err := r.db.ExecContext(ctx, query,
			ev.UserID, ev.ArticleID, ev.Opened, ev.ReadDuration, ev.Rating, ev.Saved, ev.Dismissed, ev.OccurredAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create interaction: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		ev.ID = id
		return nil
	})
}

// GetRecent retrieves the latest interaction events for a user
func (r *InteractionRepository) GetRecent(ctx context.Context, userID string, limit int) ([]domain.Interaction, error) {
	query := `
		SELECT * FROM interactions
		WHERE user_id = ?
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?
	`
	var rows []interactionRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get recent interactions: %w", err)
	}

	events := make([]domain.Interaction, len(rows))
	for i, row := range rows {
		events[i] = domain.Interaction{
			ID:           row.ID,
			UserID:       row.UserID,
			ArticleID:    row.ArticleID,
			Opened:       row.Opened,
			ReadDuration: row.ReadDuration,
			Rating:       row.Rating,
			Saved:        row.Saved,
			Dismissed:    row.Dismissed,
			OccurredAt:   row.OccurredAt,
		}
	}
	return events, nil
}

// Stats aggregates a user's engagement history
func (r *InteractionRepository) Stats(ctx context.Context, userID string) (*domain.InteractionStats, error) {
	query := `
		SELECT
			COUNT(CASE WHEN opened = 1 OR read_duration > 0 THEN 1 END) AS total_read,
			COUNT(CASE WHEN saved = 1 THEN 1 END) AS total_saved,
			COUNT(CASE WHEN dismissed = 1 THEN 1 END) AS total_dismissed,
			AVG(CASE WHEN read_duration > 0 THEN read_duration END) AS avg_read_duration
		FROM interactions
		WHERE user_id = ?
	`
	var row struct {
		TotalRead       int             `db:"total_read"`
		TotalSaved      int             `db:"total_saved"`
		TotalDismissed  int             `db:"total_dismissed"`
		AvgReadDuration sql.NullFloat64 `db:"avg_read_duration"`
	}
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return nil, fmt.Errorf("get interaction stats: %w", err)
	}

	stats := &domain.InteractionStats{
		TotalRead:      row.TotalRead,
		TotalSaved:     row.TotalSaved,
		TotalDismissed: row.TotalDismissed,
	}
	if row.AvgReadDuration.Valid {
		stats.AvgReadDuration = row.AvgReadDuration.Float64
	}
	return stats, nil
}

// DeleteOld removes interaction events older than the retention window
func (r *InteractionRepository) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := r.db.ExecContext(ctx, "DELETE FROM interactions WHERE occurred_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old interactions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return affected, nil
}
