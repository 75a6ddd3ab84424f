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

// ProfileRepository handles interest profile persistence. Weight maps,
// per-key timestamps and exclusion lists are stored as JSON columns.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// profileRow is the database representation of a profile
type profileRow struct {
	UserID         string    `db:"user_id"`
	TopicWeights   string    `db:"topic_weights"`
	SourceWeights  string    `db:"source_weights"`
	TopicUpdated   string    `db:"topic_updated"`
	SourceUpdated  string    `db:"source_updated"`
	ExcludeTopics  string    `db:"exclude_topics"`
	ExcludeSources string    `db:"exclude_sources"`
	FreshnessMode  string    `db:"freshness_mode"`
	DiversityBoost float64   `db:"diversity_boost"`
	DailyLimit     int       `db:"daily_limit"`
	AutoAdjust     bool      `db:"auto_adjust"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Get retrieves a profile, nil if the user has none
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return r.toDomainProfile(&row)
}

// GetOrCreate retrieves a profile, creating a neutral default on first read.
// Creation is idempotent, a concurrent creator wins harmlessly.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = domain.NewProfile(userID, time.Now())
	query := `
		INSERT INTO profiles (user_id, freshness_mode, diversity_boost, daily_limit, auto_adjust, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING
	`
	_, err = r.db.ExecContext(ctx, query, profile.UserID, string(profile.FreshnessMode),
		profile.DiversityBoost, profile.DailyLimit, profile.AutoAdjust, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create default profile: %w", err)
	}

	// re-read so a concurrent creation still returns the stored state
	profile, err = r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s missing after create", userID)
	}
	return profile, nil
}

// Save persists the full profile state, retrying on sqlite lock errors
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	row, err := r.toRow(profile)
	if err != nil {
		return err
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO profiles (
				user_id, topic_weights, source_weights, topic_updated, source_updated,
				exclude_topics, exclude_sources, freshness_mode, diversity_boost,
				daily_limit, auto_adjust, created_at, updated_at
			) VALUES (
				:user_id, :topic_weights, :source_weights, :topic_updated, :source_updated,
				:exclude_topics, :exclude_sources, :freshness_mode, :diversity_boost,
				:daily_limit, :auto_adjust, :created_at, :updated_at
			)
			ON CONFLICT(user_id) DO UPDATE SET
				topic_weights = excluded.topic_weights,
				source_weights = excluded.source_weights,
				topic_updated = excluded.topic_updated,
				source_updated = excluded.source_updated,
				exclude_topics = excluded.exclude_topics,
				exclude_sources = excluded.exclude_sources,
				freshness_mode = excluded.freshness_mode,
				diversity_boost = excluded.diversity_boost,
				daily_limit = excluded.daily_limit,
				auto_adjust = excluded.auto_adjust,
				updated_at = excluded.updated_at
		`
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save profile: %w", err)}
		}
		return nil
	})
}

// ListUserIDs returns the ids of all users with a stored profile
func (r *ProfileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, "SELECT user_id FROM profiles ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

// Delete removes a profile and the user's interaction history
func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM interactions WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete interactions: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM digests WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete digests: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) toRow(profile *domain.Profile) (*profileRow, error) {
	topicWeights, err := json.Marshal(profile.TopicWeights)
	if err != nil {
		return nil, fmt.Errorf("marshal topic weights: %w", err)
	}
	sourceWeights, err := json.Marshal(profile.SourceWeights)
	if err != nil {
		return nil, fmt.Errorf("marshal source weights: %w", err)
	}
	topicUpdated, err := json.Marshal(profile.TopicUpdated)
	if err != nil {
		return nil, fmt.Errorf("marshal topic timestamps: %w", err)
	}
	sourceUpdated, err := json.Marshal(profile.SourceUpdated)
	if err != nil {
		return nil, fmt.Errorf("marshal source timestamps: %w", err)
	}
	excludeTopics, err := json.Marshal(profile.ExcludeTopics)
	if err != nil {
		return nil, fmt.Errorf("marshal excluded topics: %w", err)
	}
	excludeSources, err := json.Marshal(profile.ExcludeSources)
	if err != nil {
		return nil, fmt.Errorf("marshal excluded sources: %w", err)
	}

	return &profileRow{
		UserID:         profile.UserID,
		TopicWeights:   string(topicWeights),
		SourceWeights:  string(sourceWeights),
		TopicUpdated:   string(topicUpdated),
		SourceUpdated:  string(sourceUpdated),
		ExcludeTopics:  string(excludeTopics),
		ExcludeSources: string(excludeSources),
		FreshnessMode:  string(profile.FreshnessMode),
		DiversityBoost: profile.DiversityBoost,
		DailyLimit:     profile.DailyLimit,
		AutoAdjust:     profile.AutoAdjust,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) toDomainProfile(row *profileRow) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:         row.UserID,
		FreshnessMode:  domain.FreshnessMode(row.FreshnessMode),
		DiversityBoost: row.DiversityBoost,
		DailyLimit:     row.DailyLimit,
		AutoAdjust:     row.AutoAdjust,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if err := json.Unmarshal([]byte(row.TopicWeights), &profile.TopicWeights); err != nil {
		return nil, fmt.Errorf("unmarshal topic weights: %w", err)
	}
	if err := json.Unmarshal([]byte(row.SourceWeights), &profile.SourceWeights); err != nil {
		return nil, fmt.Errorf("unmarshal source weights: %w", err)
	}
	if err := json.Unmarshal([]byte(row.TopicUpdated), &profile.TopicUpdated); err != nil {
		return nil, fmt.Errorf("unmarshal topic timestamps: %w", err)
	}
	if err := json.Unmarshal([]byte(row.SourceUpdated), &profile.SourceUpdated); err != nil {
		return nil, fmt.Errorf("unmarshal source timestamps: %w", err)
	}
	if err := json.Unmarshal([]byte(row.ExcludeTopics), &profile.ExcludeTopics); err != nil {
		return nil, fmt.Errorf("unmarshal excluded topics: %w", err)
	}
	if err := json.Unmarshal([]byte(row.ExcludeSources), &profile.ExcludeSources); err != nil {
		return nil, fmt.Errorf("unmarshal excluded sources: %w", err)
	}

	// stored weights predate validation changes in the worst case, clamp on read
	profile.Normalize()
	return profile, nil
}
