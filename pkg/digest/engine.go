package digest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/digesto/pkg/domain"
)

// ProfileStore provides access to per-user interest profiles
type ProfileStore interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// ArticleStore provides access to candidate articles
type ArticleStore interface {
	Get(ctx context.Context, id int64) (*domain.Article, error)
	GetRecent(ctx context.Context, since time.Time, limit int) ([]domain.Article, error)
}

// InteractionStore persists interaction events
type InteractionStore interface {
	Create(ctx context.Context, ev *domain.Interaction) error
}

// Config holds engine tuning parameters
type Config struct {
	CandidateWindow time.Duration // how far back to pull candidates
	MaxCandidates   int           // bound on the candidate set per generation
}

// Engine assembles personalized digests and evolves profiles from feedback.
// Generation only reads profile state and runs lock-free; profile mutation
// (feedback and decay) is serialized per user so concurrent interactions for
// the same user can't lose weight increments.
type Engine struct {
	profiles        ProfileStore
	articles        ArticleStore
	interactions    InteractionStore
	candidateWindow time.Duration
	maxCandidates   int

	locks userLocks
	nowFn func() time.Time // for tests
}

// NewEngine creates an engine with the given stores and configuration
func NewEngine(profiles ProfileStore, articles ArticleStore, interactions InteractionStore, cfg Config) *Engine {
	if cfg.CandidateWindow == 0 {
		cfg.CandidateWindow = 48 * time.Hour
	}
	if cfg.MaxCandidates == 0 {
		cfg.MaxCandidates = 200
	}
	return &Engine{
		profiles:        profiles,
		articles:        articles,
		interactions:    interactions,
		candidateWindow: cfg.CandidateWindow,
		maxCandidates:   cfg.MaxCandidates,
	}
}

// Generate pulls a bounded candidate set and assembles a digest for the user
func (e *Engine) Generate(ctx context.Context, userID string) (*domain.Digest, error) {
	now := e.now()
	candidates, err := e.articles.GetRecent(ctx, now.Add(-e.candidateWindow), e.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	return e.GenerateFrom(ctx, userID, candidates, now)
}

// GenerateFrom assembles a digest from an explicit candidate set: filter
// exclusions, score, select under the diversity cap, report. An empty
// candidate set yields a valid empty digest. If exclusions wipe out a
// non-empty set the unfiltered set is used instead, an over-aggressive filter
// must not silently produce an empty digest.
func (e *Engine) GenerateFrom(ctx context.Context, userID string, candidates []domain.Article, now time.Time) (*domain.Digest, error) {
	profile, err := e.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	filtered := filterExcluded(candidates, profile)
	if len(filtered) == 0 && len(candidates) > 0 {
		lgr.Printf("[WARN] exclusions removed all %d candidates for user %s, using unfiltered set", len(candidates), userID)
		filtered = candidates
	}

	scored := ScoreBatch(filtered, profile, now)
	selected := Select(scored, profile.DailyLimit, profile.DiversityBoost)

	digest := &domain.Digest{
		UserID:      userID,
		Articles:    selected,
		GeneratedAt: now,
	}
	if len(selected) > 0 {
		sum := 0.0
		categories := make(map[string]struct{})
		for _, a := range selected {
			sum += a.Score
			categories[a.Category] = struct{}{}
		}
		digest.PersonalizationScore = sum / float64(len(selected))
		digest.DiversityScore = float64(len(categories)) / float64(len(selected))
	}

	lgr.Printf("[DEBUG] digest for user %s: %d candidates, %d selected, personalization %.3f",
		userID, len(candidates), len(selected), digest.PersonalizationScore)
	return digest, nil
}

// RecordInteraction applies one interaction event to the user's profile and
// persists both. The event is recorded even when it maps to no known article
// or carries a neutral signal; the profile is only written when weights
// actually changed.
func (e *Engine) RecordInteraction(ctx context.Context, userID string, ev domain.Interaction) (*domain.ProfileSummary, error) {
	unlock := e.locks.lock(userID)
	defer unlock()

	now := e.now()
	ev.UserID = userID
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = now
	}

	profile, err := e.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	summary := domain.ProfileSummary{UserID: userID, Signal: domain.SignalNeutral}
	article, err := e.articles.Get(ctx, ev.ArticleID)
	switch {
	case err != nil:
		return nil, fmt.Errorf("get article %d: %w", ev.ArticleID, err)
	case article == nil:
		lgr.Printf("[WARN] interaction for unknown article %d from user %s, profile not updated", ev.ArticleID, userID)
	default:
		summary = Apply(profile, article.Category, article.Source, ev, now)
		if summary.Signal != domain.SignalNeutral {
			if err := e.profiles.Save(ctx, profile); err != nil {
				return nil, fmt.Errorf("save profile: %w", err)
			}
		}
	}

	if err := e.interactions.Create(ctx, &ev); err != nil {
		return nil, fmt.Errorf("record interaction: %w", err)
	}

	return &summary, nil
}

// DecayProfiles sweeps every profile, relaxing stale weights toward neutral.
// Each profile is processed under the same per-user lock live feedback takes.
// Returns the total number of decayed weight keys.
func (e *Engine) DecayProfiles(ctx context.Context) (int, error) {
	userIDs, err := e.profiles.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	total := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		changed, err := e.decayProfile(ctx, userID)
		if err != nil {
			lgr.Printf("[WARN] decay failed for user %s: %v", userID, err)
			continue
		}
		total += changed
	}

	if total > 0 {
		lgr.Printf("[INFO] decayed %d weights across %d profiles", total, len(userIDs))
	}
	return total, nil
}

func (e *Engine) decayProfile(ctx context.Context, userID string) (int, error) {
	unlock := e.locks.lock(userID)
	defer unlock()

	profile, err := e.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get profile: %w", err)
	}

	changed := Decay(profile, e.now())
	if changed == 0 {
		return 0, nil
	}
	if err := e.profiles.Save(ctx, profile); err != nil {
		return 0, fmt.Errorf("save profile: %w", err)
	}
	return changed, nil
}

func (e *Engine) now() time.Time {
	if e.nowFn != nil {
		return e.nowFn()
	}
	return time.Now()
}

func filterExcluded(candidates []domain.Article, profile *domain.Profile) []domain.Article {
	filtered := make([]domain.Article, 0, len(candidates))
	for _, a := range candidates {
		if profile.TopicExcluded(a.Category) || profile.SourceExcluded(a.Source) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// userLocks serializes profile mutation per user id
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
