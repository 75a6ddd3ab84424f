package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:digesto.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		DigestInterval  time.Duration `yaml:"digest_interval" json:"digest_interval" jsonschema:"default=1h,description=Interval between digest precompute sweeps"`
		DecayInterval   time.Duration `yaml:"decay_interval" json:"decay_interval" jsonschema:"default=24h,description=Interval between profile decay sweeps"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=12h,description=Interval between retention cleanup sweeps"`
		MaxWorkers      int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent digest workers"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Personalization PersonalizationConfig `yaml:"personalization" json:"personalization" jsonschema:"description=Personalization engine configuration"`
}

// PersonalizationConfig holds digest generation and retention settings
type PersonalizationConfig struct {
	CandidateWindow      time.Duration `yaml:"candidate_window" json:"candidate_window" jsonschema:"default=48h,description=How far back to pull candidate articles"`
	MaxCandidates        int           `yaml:"max_candidates" json:"max_candidates" jsonschema:"default=200,minimum=1,description=Maximum candidate articles per digest"`
	ArticleRetention     time.Duration `yaml:"article_retention" json:"article_retention" jsonschema:"default=720h,description=How long articles are kept"`
	InteractionRetention time.Duration `yaml:"interaction_retention" json:"interaction_retention" jsonschema:"default=2160h,description=How long interaction events are kept"`
	DigestRetention      time.Duration `yaml:"digest_retention" json:"digest_retention" jsonschema:"default=168h,description=How long stored digests are kept"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:digesto.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.DigestInterval == 0 {
		cfg.Schedule.DigestInterval = time.Hour
	}
	if cfg.Schedule.DecayInterval == 0 {
		cfg.Schedule.DecayInterval = 24 * time.Hour
	}
	if cfg.Schedule.CleanupInterval == 0 {
		cfg.Schedule.CleanupInterval = 12 * time.Hour
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for personalization
	if cfg.Personalization.CandidateWindow == 0 {
		cfg.Personalization.CandidateWindow = 48 * time.Hour
	}
	if cfg.Personalization.MaxCandidates == 0 {
		cfg.Personalization.MaxCandidates = 200
	}
	if cfg.Personalization.ArticleRetention == 0 {
		cfg.Personalization.ArticleRetention = 30 * 24 * time.Hour
	}
	if cfg.Personalization.InteractionRetention == 0 {
		cfg.Personalization.InteractionRetention = 90 * 24 * time.Hour
	}
	if cfg.Personalization.DigestRetention == 0 {
		cfg.Personalization.DigestRetention = 7 * 24 * time.Hour
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate schedule config
	if cfg.Schedule.DigestInterval < time.Minute {
		return fmt.Errorf("schedule.digest_interval must be at least 1 minute")
	}
	if cfg.Schedule.DecayInterval < time.Hour {
		return fmt.Errorf("schedule.decay_interval must be at least 1 hour")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	// validate personalization config
	if cfg.Personalization.CandidateWindow < time.Hour {
		return fmt.Errorf("personalization.candidate_window must be at least 1 hour")
	}
	if cfg.Personalization.MaxCandidates < 1 {
		return fmt.Errorf("personalization.max_candidates must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetPersonalizationConfig returns personalization engine configuration
func (c *Config) GetPersonalizationConfig() PersonalizationConfig {
	return c.Personalization
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
