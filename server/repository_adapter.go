package server

import (
	"context"
	"time"

	"github.com/umputun/digesto/pkg/domain"
	"github.com/umputun/digesto/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetOrCreateProfile returns the user's profile, creating a default on first access
func (r *RepositoryAdapter) GetOrCreateProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return r.repos.Profile.GetOrCreate(ctx, userID)
}

// SaveProfile persists the full profile state
func (r *RepositoryAdapter) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	return r.repos.Profile.Save(ctx, profile)
}

// DeleteProfile removes the profile and the user's history
func (r *RepositoryAdapter) DeleteProfile(ctx context.Context, userID string) error {
	return r.repos.Profile.Delete(ctx, userID)
}

// CreateArticle stores a candidate article
func (r *RepositoryAdapter) CreateArticle(ctx context.Context, article *domain.Article) error {
	return r.repos.Article.Create(ctx, article)
}

// GetRecentArticles returns articles published after the given time
func (r *RepositoryAdapter) GetRecentArticles(ctx context.Context, since time.Time, limit int) ([]domain.Article, error) {
	return r.repos.Article.GetRecent(ctx, since, limit)
}

// GetInteractions returns the user's latest interaction events
func (r *RepositoryAdapter) GetInteractions(ctx context.Context, userID string, limit int) ([]domain.Interaction, error) {
	return r.repos.Interaction.GetRecent(ctx, userID, limit)
}

// GetInteractionStats returns the user's aggregated engagement history
func (r *RepositoryAdapter) GetInteractionStats(ctx context.Context, userID string) (*domain.InteractionStats, error) {
	return r.repos.Interaction.Stats(ctx, userID)
}

// GetLatestDigest returns the most recent stored digest for the user
func (r *RepositoryAdapter) GetLatestDigest(ctx context.Context, userID string) (*domain.Digest, error) {
	return r.repos.Digest.GetLatest(ctx, userID)
}
