package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scholarsportal/askdata/internal/analyzer"
	"github.com/scholarsportal/askdata/internal/api"
	"github.com/scholarsportal/askdata/internal/auth"
	"github.com/scholarsportal/askdata/internal/cache"
	"github.com/scholarsportal/askdata/internal/config"
	"github.com/scholarsportal/askdata/internal/directory"
	"github.com/scholarsportal/askdata/internal/ingest"
	"github.com/scholarsportal/askdata/internal/lh3"
	"github.com/scholarsportal/askdata/internal/metrics"
	"github.com/scholarsportal/askdata/internal/refresh"
	"github.com/scholarsportal/askdata/internal/storage"
	"github.com/scholarsportal/askdata/pkg/middleware"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("log_level", cfg.LogLevel).
		Msg("starting askdata server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Institution directory: bundled defaults unless a file overrides them
	dir := directory.Default()
	if cfg.DirectoryFile != "" {
		dir, err = directory.LoadFile(cfg.DirectoryFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.DirectoryFile).Msg("failed to load institution directory")
		}
		log.Info().Str("file", cfg.DirectoryFile).Int("schools", len(dir.Schools())).Msg("institution directory loaded")
	}

	// Day-record cache and run journal
	store, err := storage.NewStore(ctx, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// Upstream transaction source, wrapped with the day-record cache
	client := lh3.NewClient(cfg.LH3BaseURL, cfg.LH3Username, cfg.LH3Password, cfg.LH3Timeout)
	fetcher := ingest.NewCachingFetcher(client, store, log.Logger)

	analyzerService := analyzer.New(fetcher, dir, store, cfg.SLThresholdSecs, log.Logger)

	// Service overview snapshot, refreshed in the background
	snapshot := cache.NewOverviewSnapshot()
	refresher := refresh.New(analyzerService, snapshot, cfg.RefreshInterval, cfg.OverviewWindowDays, log.Logger)
	go refresher.Start(ctx)

	trendHandler := api.NewTrendHandler(analyzerService, log.Logger)
	schoolHandler := api.NewSchoolHandler(analyzerService, dir, log.Logger)
	overviewHandler := api.NewOverviewHandler(analyzerService, snapshot, log.Logger)
	runHandler := api.NewRunHandler(analyzerService, log.Logger)
	adminHandler := api.NewAdminHandler(store, log.Logger)

	// Create router
	r := chi.NewRouter()

	// Add middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Register public routes (no auth required)
	r.Get("/health", healthHandler)
	r.Get("/metrics", metrics.Get().Handler())

	// Add auth middleware for protected routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Route("/api", func(r chi.Router) {
			r.Get("/trends", trendHandler.GetTrends)
			r.Get("/schools", schoolHandler.ListSchools)
			r.Get("/schools/{school}/report", schoolHandler.GetReport)
			r.Get("/overview", overviewHandler.GetOverview)
			r.Get("/runs/{date}", runHandler.GetRuns)

			r.Group(func(r chi.Router) {
				r.Use(api.RequireAdmin)
				r.Delete("/admin/cache", adminHandler.ResetCache)
			})
		})
	})

	// Create HTTP server. Trend requests can fan out over two years of
	// daily fetches on a cold cache, so the write timeout is generous.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Msgf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Stop the background refresher
	cancel()

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","service":"askdata"}`)
}
