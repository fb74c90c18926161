package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	slackchat "github.com/mauv0809/wordle-tally/internal/chat/slack"
	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/mauv0809/wordle-tally/internal/database"
	server "github.com/mauv0809/wordle-tally/internal/http"
	"github.com/mauv0809/wordle-tally/internal/identity"
	"github.com/mauv0809/wordle-tally/internal/importer"
	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/mauv0809/wordle-tally/internal/notifier/slack"
	"github.com/mauv0809/wordle-tally/internal/nyt"
	"github.com/mauv0809/wordle-tally/internal/parser"
	"github.com/mauv0809/wordle-tally/internal/pubsub"
	"github.com/mauv0809/wordle-tally/internal/puzzles"
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := wordle.New(db, cfg.Wordle.Points)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	nytClient := nyt.NewClient()
	gateway := slackchat.NewGateway(cfg.Slack.Token)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID)
	pubsubClient := pubsub.New(cfg.ProjectID)
	puzzleResolver := puzzles.New(nytClient, store, metricsSvc)
	identityResolver := identity.New(gateway)
	resultParser := parser.New(cfg.Wordle.BotUserID)
	scoringEngine := scoring.New(cfg.Wordle.Points)
	imp := importer.New(resultParser, identityResolver, puzzleResolver, store, gateway, metricsSvc, pubsubClient)

	s := server.NewServer(
		store,
		scoringEngine,
		imp,
		notifier,
		metricsSvc,
		metricsHandler,
		cfg,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
