package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/digesto/pkg/domain"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/profile_lister.go -pkg mocks -skip-ensure -fmt goimports . ProfileLister
//go:generate moq -out mocks/digest_store.go -pkg mocks -skip-ensure -fmt goimports . DigestStore
//go:generate moq -out mocks/cleaner.go -pkg mocks -skip-ensure -fmt goimports . Cleaner

// Scheduler runs the periodic maintenance work: digest precompute sweeps,
// profile decay and retention cleanup.
type Scheduler struct {
	engine          Engine
	profiles        ProfileLister
	digests         DigestStore
	cleaner         Cleaner
	digestInterval  time.Duration
	decayInterval   time.Duration
	cleanupInterval time.Duration
	maxWorkers      int
	retention       Retention
	wg              sync.WaitGroup
	cancel          context.CancelFunc
}

// Engine interface for digest generation and profile decay
type Engine interface {
	Generate(ctx context.Context, userID string) (*domain.Digest, error)
	DecayProfiles(ctx context.Context) (int, error)
}

// ProfileLister enumerates users for the digest sweep
type ProfileLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// DigestStore persists precomputed digests
type DigestStore interface {
	Save(ctx context.Context, digest *domain.Digest) error
}

// Cleaner removes expired rows during the cleanup sweep
type Cleaner interface {
	DeleteOldArticles(ctx context.Context, olderThan time.Duration) (int64, error)
	DeleteOldInteractions(ctx context.Context, olderThan time.Duration) (int64, error)
	DeleteOldDigests(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Retention holds per-table retention windows for the cleanup sweep
type Retention struct {
	Articles     time.Duration
	Interactions time.Duration
	Digests      time.Duration
}

// Config holds scheduler configuration
type Config struct {
	DigestInterval  time.Duration
	DecayInterval   time.Duration
	CleanupInterval time.Duration
	MaxWorkers      int
	Retention       Retention
}

// NewScheduler creates a new scheduler instance
func NewScheduler(engine Engine, profiles ProfileLister, digests DigestStore, cleaner Cleaner, cfg Config) *Scheduler {
	if cfg.DigestInterval == 0 {
		cfg.DigestInterval = time.Hour
	}
	if cfg.DecayInterval == 0 {
		cfg.DecayInterval = 24 * time.Hour
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = 12 * time.Hour
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.Retention.Articles == 0 {
		cfg.Retention.Articles = 30 * 24 * time.Hour
	}
	if cfg.Retention.Interactions == 0 {
		cfg.Retention.Interactions = 90 * 24 * time.Hour
	}
	if cfg.Retention.Digests == 0 {
		cfg.Retention.Digests = 7 * 24 * time.Hour
	}

	return &Scheduler{
		engine:          engine,
		profiles:        profiles,
		digests:         digests,
		cleaner:         cleaner,
		digestInterval:  cfg.DigestInterval,
		decayInterval:   cfg.DecayInterval,
		cleanupInterval: cfg.CleanupInterval,
		maxWorkers:      cfg.MaxWorkers,
		retention:       cfg.Retention,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.digestWorker(ctx)

	s.wg.Add(1)
	go s.decayWorker(ctx)

	if s.cleaner != nil {
		s.wg.Add(1)
		go s.cleanupWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started with digest interval %v, decay interval %v, cleanup interval %v",
		s.digestInterval, s.decayInterval, s.cleanupInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// GenerateDigestNow triggers an immediate digest sweep for all users
func (s *Scheduler) GenerateDigestNow(ctx context.Context) error {
	return s.sweepDigests(ctx)
}

// DecayNow triggers an immediate profile decay sweep
func (s *Scheduler) DecayNow(ctx context.Context) (int, error) {
	return s.engine.DecayProfiles(ctx)
}

// digestWorker periodically precomputes digests for all known users
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.digestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sweepDigests(ctx); err != nil {
				lgr.Printf("[ERROR] digest sweep failed: %v", err)
			}
		}
	}
}

// sweepDigests generates and stores a digest per user, bounded by maxWorkers
func (s *Scheduler) sweepDigests(ctx context.Context) error {
	userIDs, err := s.profiles.ListUserIDs(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	lgr.Printf("[INFO] digest sweep for %d users", len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, userID := range userIDs {
		g.Go(func() error {
			digest, err := s.engine.Generate(ctx, userID)
			if err != nil {
				// one failed user must not abort the whole sweep
				lgr.Printf("[WARN] digest generation failed for user %s: %v", userID, err)
				return nil
			}
			if err := s.digests.Save(ctx, digest); err != nil {
				lgr.Printf("[WARN] digest save failed for user %s: %v", userID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	lgr.Printf("[INFO] digest sweep completed")
	return nil
}

// decayWorker periodically relaxes stale profile weights toward neutral
func (s *Scheduler) decayWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.decayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.engine.DecayProfiles(ctx); err != nil {
				lgr.Printf("[ERROR] decay sweep failed: %v", err)
			}
		}
	}
}

// cleanupWorker periodically drops rows past their retention window
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup(ctx)
		}
	}
}

func (s *Scheduler) cleanup(ctx context.Context) {
	articles, err := s.cleaner.DeleteOldArticles(ctx, s.retention.Articles)
	if err != nil {
		lgr.Printf("[ERROR] article cleanup failed: %v", err)
	}
	interactions, err := s.cleaner.DeleteOldInteractions(ctx, s.retention.Interactions)
	if err != nil {
		lgr.Printf("[ERROR] interaction cleanup failed: %v", err)
	}
	digests, err := s.cleaner.DeleteOldDigests(ctx, s.retention.Digests)
	if err != nil {
		lgr.Printf("[ERROR] digest cleanup failed: %v", err)
	}

	if articles+interactions+digests > 0 {
		lgr.Printf("[INFO] cleanup removed %d articles, %d interactions, %d digests", articles, interactions, digests)
	}
}
