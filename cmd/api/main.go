// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

// Command api is the entry point for the Smriti HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
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

	"github.com/rafidhsn/smriti/internal/api"
	"github.com/rafidhsn/smriti/internal/blog/post"
	"github.com/rafidhsn/smriti/internal/content/book"
	"github.com/rafidhsn/smriti/internal/content/gallery"
	"github.com/rafidhsn/smriti/internal/content/media"
	"github.com/rafidhsn/smriti/internal/content/writing"
	"github.com/rafidhsn/smriti/internal/platform/config"
	"github.com/rafidhsn/smriti/internal/platform/constants"
	"github.com/rafidhsn/smriti/internal/platform/middleware"
	"github.com/rafidhsn/smriti/internal/platform/migration"
	pgstore "github.com/rafidhsn/smriti/internal/platform/postgres"
	redisstore "github.com/rafidhsn/smriti/internal/platform/redis"
	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/internal/social/comment"
	"github.com/rafidhsn/smriti/internal/social/subscriber"
	"github.com/rafidhsn/smriti/internal/social/tribute"
	"github.com/rafidhsn/smriti/internal/users/account"
	"github.com/rafidhsn/smriti/internal/users/auth"
)

// sessionSweepInterval controls how often expired session rows are purged.
const sessionSweepInterval = 6 * time.Hour

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "smriti"))
	slog.SetDefault(log)

	log.Info("[Smriti] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "smriti"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application-lifetime context for background workers (rate limiter
	// cleanup, session sweeper). Cancelled on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

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
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────

	// Users: authentication and account management share the session table.
	userRepository := auth.NewUserRepository(pool)
	authSessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	verificationTokenRepository := auth.NewVerificationTokenRepository(rdb)
	authService := auth.NewService(
		userRepository,
		authSessionRepository,
		resetTokenRepository,
		verificationTokenRepository,
		jwtSvc,
	)
	authHandler := auth.NewHandler(authService)

	accountRepository := account.NewAccountRepository(pool)
	accountSessionRepository := account.NewSessionRepository(pool)
	accountService := account.NewService(accountRepository, accountSessionRepository, log)
	accountHandler := account.NewHandler(accountService)

	// Content: the poet's archive.
	writingService := writing.NewService(writing.NewPostgresRepository(pool), log)
	bookService := book.NewService(book.NewPostgresRepository(pool), log)
	mediaService := media.NewService(media.NewPostgresRepository(pool), log)
	galleryService := gallery.NewService(gallery.NewPostgresRepository(pool), log)

	// Blog and social surfaces.
	postService := post.NewService(post.NewPostgresRepository(pool), log)
	commentService := comment.NewService(comment.NewPostgresRepository(pool), log)
	tributeService := tribute.NewService(tribute.NewPostgresRepository(pool), log)
	subscriberService := subscriber.NewService(subscriber.NewPostgresRepository(pool), log)

	// ── 9. Background Workers ─────────────────────────────────────────────
	// Periodically purge expired sessions so the table stays compact.
	go func() {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := authSessionRepository.DeleteExpired(appCtx); err != nil {
					log.Error("session_sweep_failed", slog.Any("error", err))
				}
			case <-appCtx.Done():
				return
			}
		}
	}()

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Account:    accountHandler,
		Writing:    writing.NewHandler(writingService),
		Book:       book.NewHandler(bookService),
		Media:      media.NewHandler(mediaService),
		Gallery:    gallery.NewHandler(galleryService),
		Post:       post.NewHandler(postService),
		Comment:    comment.NewHandler(commentService),
		Tribute:    tribute.NewHandler(tributeService),
		Subscriber: subscriber.NewHandler(subscriberService),
	}

	gate := middleware.GateConfig{
		AdminPrefix: cfg.AdminPathPrefix,
		AuthPages:   []string{constants.LoginPath, constants.RegisterPath},
		AdminHome:   cfg.AdminHomePath,
		SiteHome:    cfg.SiteHomePath,
		Login:       constants.LoginPath,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, authService, gate, handlers)

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

	// Stop background workers before draining requests.
	appCancel()

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
