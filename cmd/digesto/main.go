package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/digesto/pkg/config"
	"github.com/umputun/digesto/pkg/digest"
	"github.com/umputun/digesto/pkg/repository"
	"github.com/umputun/digesto/pkg/scheduler"
	"github.com/umputun/digesto/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"digesto.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)

	log.Printf("[INFO] starting digesto version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] digesto failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires configuration, storage, engine, scheduler and server together
// and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close storage: %v", err)
		}
	}()

	engine := digest.NewEngine(repos.Profile, repos.Article, repos.Interaction, digest.Config{
		CandidateWindow: cfg.Personalization.CandidateWindow,
		MaxCandidates:   cfg.Personalization.MaxCandidates,
	})

	sched := scheduler.NewScheduler(engine, repos.Profile, repos.Digest, repos, scheduler.Config{
		DigestInterval:  cfg.Schedule.DigestInterval,
		DecayInterval:   cfg.Schedule.DecayInterval,
		CleanupInterval: cfg.Schedule.CleanupInterval,
		MaxWorkers:      cfg.Schedule.MaxWorkers,
		Retention: scheduler.Retention{
			Articles:     cfg.Personalization.ArticleRetention,
			Interactions: cfg.Personalization.InteractionRetention,
			Digests:      cfg.Personalization.DigestRetention,
		},
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), engine, sched, revision, opts.Debug)
	return srv.Run(ctx)
}

// SetupLog configures the global logger, optional secrets are masked in output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
