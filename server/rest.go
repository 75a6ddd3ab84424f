package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/digesto/pkg/domain"
)

// sanitize strips all markup from ingested article fields
var sanitize = bluemonday.StrictPolicy()

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// digestHandler returns the user's digest. The latest precomputed digest is
// served when one exists; ?fresh=true forces generation from current candidates.
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	if r.URL.Query().Get("fresh") != "true" {
		digest, err := s.db.GetLatestDigest(ctx, userID)
		if err != nil {
			log.Printf("[ERROR] failed to get stored digest: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		if digest != nil {
			renderJSON(w, r, http.StatusOK, digest)
			return
		}
	}

	digest, err := s.engine.Generate(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to generate digest for %s: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, digest)
}

// interactionHandler records one interaction event and returns the profile changes
func (s *Server) interactionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	var ev domain.Interaction
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if ev.ArticleID <= 0 {
		renderError(w, r, fmt.Errorf("article_id is required"), http.StatusBadRequest)
		return
	}
	if ev.Rating < -1 || ev.Rating > 1 {
		renderError(w, r, fmt.Errorf("rating must be -1, 0 or 1"), http.StatusBadRequest)
		return
	}
	if ev.ReadDuration < 0 {
		renderError(w, r, fmt.Errorf("read_duration must be non-negative"), http.StatusBadRequest)
		return
	}

	summary, err := s.engine.RecordInteraction(ctx, userID, ev)
	if err != nil {
		log.Printf("[ERROR] failed to record interaction: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// listInteractionsHandler returns the user's recent interaction events
func (s *Server) listInteractionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")
	limit := queryInt(r, "limit", 50, 200)

	events, err := s.db.GetInteractions(ctx, userID, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get interactions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, events)
}

// getProfileHandler returns the user's profile, creating a neutral one on first access
func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	profile, err := s.db.GetOrCreateProfile(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, profile)
}

// profileUpdateRequest carries a partial profile update, absent fields keep
// their current values
type profileUpdateRequest struct {
	TopicWeights   map[string]float64 `json:"topic_weights"`
	SourceWeights  map[string]float64 `json:"source_weights"`
	ExcludeTopics  *[]string          `json:"exclude_topics"`
	ExcludeSources *[]string          `json:"exclude_sources"`
	FreshnessMode  *string            `json:"freshness_mode"`
	DiversityBoost *float64           `json:"diversity_boost"`
	DailyLimit     *int               `json:"daily_limit"`
	AutoAdjust     *bool              `json:"auto_adjust"`
}

// updateProfileHandler applies a partial profile update
func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.FreshnessMode != nil && !domain.FreshnessMode(*req.FreshnessMode).Valid() {
		renderError(w, r, fmt.Errorf("invalid freshness_mode %q", *req.FreshnessMode), http.StatusBadRequest)
		return
	}

	profile, err := s.db.GetOrCreateProfile(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	now := time.Now()
	for topic, weight := range req.TopicWeights {
		profile.TopicWeights[topic] = weight
		profile.TopicUpdated[topic] = now
	}
	for source, weight := range req.SourceWeights {
		profile.SourceWeights[source] = weight
		profile.SourceUpdated[source] = now
	}
	if req.ExcludeTopics != nil {
		profile.ExcludeTopics = *req.ExcludeTopics
	}
	if req.ExcludeSources != nil {
		profile.ExcludeSources = *req.ExcludeSources
	}
	if req.FreshnessMode != nil {
		profile.FreshnessMode = domain.FreshnessMode(*req.FreshnessMode)
	}
	if req.DiversityBoost != nil {
		profile.DiversityBoost = *req.DiversityBoost
	}
	if req.DailyLimit != nil {
		profile.DailyLimit = *req.DailyLimit
	}
	if req.AutoAdjust != nil {
		profile.AutoAdjust = *req.AutoAdjust
	}
	profile.Normalize()
	profile.UpdatedAt = now

	if err := s.db.SaveProfile(ctx, profile); err != nil {
		log.Printf("[ERROR] failed to save profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, profile)
}

// deleteProfileHandler removes the profile and the user's history
func (s *Server) deleteProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	if err := s.db.DeleteProfile(ctx, userID); err != nil {
		log.Printf("[ERROR] failed to delete profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted", "user_id": userID})
}

// onboardHandler seeds the profile from explicit topic selections
func (s *Server) onboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	var req struct {
		Topics []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.Topics) == 0 {
		renderError(w, r, fmt.Errorf("topics are required"), http.StatusBadRequest)
		return
	}

	profile, err := s.db.GetOrCreateProfile(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	profile.SeedTopics(req.Topics, time.Now())
	if err := s.db.SaveProfile(ctx, profile); err != nil {
		log.Printf("[ERROR] failed to save profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, profile)
}

// statsHandler returns the user's aggregated engagement history
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user")

	stats, err := s.db.GetInteractionStats(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// createArticleHandler ingests a candidate article, text fields are stripped of markup
func (s *Server) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if article.GUID == "" {
		renderError(w, r, fmt.Errorf("guid is required"), http.StatusBadRequest)
		return
	}
	if article.Title == "" {
		renderError(w, r, fmt.Errorf("title is required"), http.StatusBadRequest)
		return
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}
	if article.Category == "" {
		article.Category = "General"
	}
	if article.Source == "" {
		article.Source = "Unknown"
	}

	article.Title = sanitize.Sanitize(article.Title)
	article.Summary = sanitize.Sanitize(article.Summary)
	article.Category = sanitize.Sanitize(article.Category)
	article.Source = sanitize.Sanitize(article.Source)

	if err := s.db.CreateArticle(ctx, &article); err != nil {
		log.Printf("[ERROR] failed to create article: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, article)
}

// listArticlesHandler returns recent candidate articles
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hours := queryInt(r, "hours", 48, 24*30)
	limit := queryInt(r, "limit", 100, 500)

	articles, err := s.db.GetRecentArticles(ctx, time.Now().Add(-time.Duration(hours)*time.Hour), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// digestSweepHandler triggers an immediate digest sweep for all users
func (s *Server) digestSweepHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.GenerateDigestNow(r.Context()); err != nil {
		log.Printf("[ERROR] digest sweep failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decayHandler triggers an immediate profile decay sweep
func (s *Server) decayHandler(w http.ResponseWriter, r *http.Request) {
	decayed, err := s.scheduler.DecayNow(r.Context())
	if err != nil {
		log.Printf("[ERROR] decay sweep failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"status": "ok", "decayed": decayed})
}

// queryInt parses an integer query parameter with a default and an upper cap
func queryInt(r *http.Request, name string, def, maxVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return def
	}
	if n > maxVal {
		return maxVal
	}
	return n
}
