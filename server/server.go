package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/digesto/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	engine    Engine
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetOrCreateProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	DeleteProfile(ctx context.Context, userID string) error
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetRecentArticles(ctx context.Context, since time.Time, limit int) ([]domain.Article, error)
	GetInteractions(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
	GetInteractionStats(ctx context.Context, userID string) (*domain.InteractionStats, error)
	GetLatestDigest(ctx context.Context, userID string) (*domain.Digest, error)
}

// Engine interface for digest assembly and feedback learning
type Engine interface {
	Generate(ctx context.Context, userID string) (*domain.Digest, error)
	RecordInteraction(ctx context.Context, userID string, ev domain.Interaction) (*domain.ProfileSummary, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	GenerateDigestNow(ctx context.Context) error
	DecayNow(ctx context.Context) (int, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, engine Engine, scheduler Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		engine:    engine,
		scheduler: scheduler,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("digesto", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /digest/{user}", s.digestHandler)

		r.HandleFunc("POST /users/{user}/interactions", s.interactionHandler)
		r.HandleFunc("GET /users/{user}/interactions", s.listInteractionsHandler)
		r.HandleFunc("GET /users/{user}/profile", s.getProfileHandler)
		r.HandleFunc("PUT /users/{user}/profile", s.updateProfileHandler)
		r.HandleFunc("DELETE /users/{user}/profile", s.deleteProfileHandler)
		r.HandleFunc("POST /users/{user}/onboard", s.onboardHandler)
		r.HandleFunc("GET /users/{user}/stats", s.statsHandler)

		r.HandleFunc("POST /articles", s.createArticleHandler)
		r.HandleFunc("GET /articles", s.listArticlesHandler)

		r.Mount("/admin").Route(func(admin *routegroup.Bundle) {
			admin.HandleFunc("POST /digest-sweep", s.digestSweepHandler)
			admin.HandleFunc("POST /decay", s.decayHandler)
		})
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
