package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/digesto/pkg/domain"
)

// DigestRepository stores generated digests for later retrieval.
// Selected articles are stored as a JSON snapshot, a digest stays
// readable even after the source articles age out.
type DigestRepository struct {
	db *sqlx.DB
}

// NewDigestRepository creates a new digest repository
func NewDigestRepository(db *sqlx.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// digestRow is the database representation of a digest
type digestRow struct {
	ID                   int64     `db:"id"`
	UserID               string    `db:"user_id"`
	Articles             string    `db:"articles"`
	PersonalizationScore float64   `db:"personalization_score"`
	DiversityScore       float64   `db:"diversity_score"`
	GeneratedAt          time.Time `db:"generated_at"`
}

// Save persists a generated digest, retrying on sqlite lock errors
func (r *DigestRepository) Save(ctx context.Context, digest *domain.Digest) error {
	articles, err := json.Marshal(digest.Articles)
	if err != nil {
		return fmt.Errorf("marshal digest articles: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO digests (user_id, articles, personalization_score, diversity_score, generated_at)
			VALUES (?, ?, ?, ?, ?)
		`
		_, err := r.db.ExecContext(ctx, query, digest.UserID, string(articles),
			digest.PersonalizationScore, digest.DiversityScore, digest.GeneratedAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save digest: %w", err)}
		}
		return nil
	})
}

// GetLatest retrieves the most recent digest for a user, nil if none exists
func (r *DigestRepository) GetLatest(ctx context.Context, userID string) (*domain.Digest, error) {
	var row digestRow
	query := `
		SELECT * FROM digests
		WHERE user_id = ?
		ORDER BY generated_at DESC, id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &row, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest digest: %w", err)
	}

	digest := &domain.Digest{
		UserID:               row.UserID,
		PersonalizationScore: row.PersonalizationScore,
		DiversityScore:       row.DiversityScore,
		GeneratedAt:          row.GeneratedAt,
	}
	if err := json.Unmarshal([]byte(row.Articles), &digest.Articles); err != nil {
		return nil, fmt.Errorf("unmarshal digest articles: %w", err)
	}
	return digest, nil
}

// DeleteOld removes digests generated before the retention window
func (r *DigestRepository) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := r.db.ExecContext(ctx, "DELETE FROM digests WHERE generated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old digests: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return affected, nil
}
