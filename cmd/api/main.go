// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env honored in dev).
//  3. Connect to PostgreSQL when configured; otherwise run in static
//     fallback mode (reads serve the bundled snapshot, writes are refused).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent, only with a database).
//  6. Wire services, handlers and the stats flush schedule.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/longpd/folio/internal/api"
	"github.com/longpd/folio/internal/content/achievement"
	"github.com/longpd/folio/internal/content/blog"
	"github.com/longpd/folio/internal/content/gallery"
	"github.com/longpd/folio/internal/content/project"
	"github.com/longpd/folio/internal/inbox"
	"github.com/longpd/folio/internal/platform/config"
	"github.com/longpd/folio/internal/platform/constants"
	"github.com/longpd/folio/internal/platform/migration"
	pgstore "github.com/longpd/folio/internal/platform/postgres"
	redisstore "github.com/longpd/folio/internal/platform/redis"
	"github.com/longpd/folio/internal/platform/sec"
	"github.com/longpd/folio/internal/profile"
	"github.com/longpd/folio/internal/settings"
	"github.com/longpd/folio/internal/stats"
	"github.com/longpd/folio/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a developer convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database_configured", cfg.HasDatabase()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Long-lived context for background workers (rate limiter cleanup).
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL (optional) ──────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()
	} else {
		log.Warn("static_fallback_mode",
			slog.String("detail", "DATABASE_URL is empty; serving bundled snapshot, mutations disabled"))
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.HasDatabase() {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	// Repositories stay nil without a database; services interpret a nil
	// repository as fallback mode.
	var (
		projectRepo     project.Repository
		achievementRepo achievement.Repository
		galleryRepo     gallery.Repository
		blogRepo        blog.Repository
		profileRepo     profile.Repository
		settingsRepo    settings.Repository
		inboxRepo       inbox.Repository
		statsRepo       stats.Repository
		accountRepo     auth.AccountRepository
	)
	if pool != nil {
		projectRepo = project.NewPostgresRepository(pool)
		achievementRepo = achievement.NewPostgresRepository(pool)
		galleryRepo = gallery.NewPostgresRepository(pool)
		blogRepo = blog.NewPostgresRepository(pool)
		profileRepo = profile.NewPostgresRepository(pool)
		settingsRepo = settings.NewPostgresRepository(pool)
		inboxRepo = inbox.NewPostgresRepository(pool)
		statsRepo = stats.NewPostgresRepository(pool)
		accountRepo = auth.NewPostgresAccountRepository(pool)
	}

	statsService := stats.NewService(statsRepo, stats.NewBuffer(rdb), log)

	projectService := project.NewService(projectRepo, project.StaticRows, log)
	achievementService := achievement.NewService(achievementRepo, achievement.StaticRows, log)
	galleryService := gallery.NewService(galleryRepo, gallery.StaticRows, log)
	blogService := blog.NewService(blogRepo, statsService, log)
	profileService := profile.NewService(profileRepo, profile.StaticEntries, log)
	settingsService := settings.NewService(settingsRepo, settings.StaticRows, log)
	inboxService := inbox.NewService(inboxRepo, log)

	refreshTokens := auth.NewRefreshTokenRepository(rdb)
	authService := auth.NewService(accountRepo, refreshTokens, jwtSvc, log)

	// ── 9. Stats Flush Schedule ───────────────────────────────────────────
	// Buffered view counts fold into Postgres on a fixed cadence. Without a
	// database the buffer keeps accumulating and the job stays idle.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(constants.StatsFlushSpec, func() {
		statsService.Flush(appCtx)
	})
	must(log, err, "schedule stats flush")
	scheduler.Start()
	defer func() {
		flushCtx := scheduler.Stop()
		<-flushCtx.Done()
		// One last sweep so a clean shutdown loses no buffered views.
		statsService.Flush(context.Background())
	}()

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        auth.NewHandler(authService),
		Project:     project.NewHandler(projectService),
		Achievement: achievement.NewHandler(achievementService),
		Gallery:     gallery.NewHandler(galleryService),
		Blog:        blog.NewHandler(blogService),
		Profile:     profile.NewHandler(profileService),
		Settings:    settings.NewHandler(settingsService),
		Inbox:       inbox.NewHandler(inboxService),
		Stats:       stats.NewHandler(statsService),
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
