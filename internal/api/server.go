// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rafidhsn/smriti/internal/blog/post"
	"github.com/rafidhsn/smriti/internal/content/book"
	"github.com/rafidhsn/smriti/internal/content/gallery"
	"github.com/rafidhsn/smriti/internal/content/media"
	"github.com/rafidhsn/smriti/internal/content/writing"
	"github.com/rafidhsn/smriti/internal/platform/config"
	"github.com/rafidhsn/smriti/internal/platform/constants"
	"github.com/rafidhsn/smriti/internal/platform/middleware"
	"github.com/rafidhsn/smriti/internal/social/comment"
	"github.com/rafidhsn/smriti/internal/social/subscriber"
	"github.com/rafidhsn/smriti/internal/social/tribute"
	"github.com/rafidhsn/smriti/internal/users/account"
	"github.com/rafidhsn/smriti/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles sign-in, registration, and token lifecycle routes.
	Auth *auth.Handler

	// Account handles profile, username, session, and role management.
	Account *account.Handler

	// Writing serves the poems, songs, and essays archive.
	Writing *writing.Handler

	// Book serves the published book catalogue.
	Book *book.Handler

	// Media serves audio and video recordings.
	Media *media.Handler

	// Gallery serves photographs, with visitor submission and moderation.
	Gallery *gallery.Handler

	// Post serves blog posts with the moderation workflow.
	Post *post.Handler

	// Comment serves reader comments under writings and posts.
	Comment *comment.Handler

	// Tribute serves memorial tributes.
	Tribute *tribute.Handler

	// Subscriber serves the news mailing list.
	Subscriber *subscriber.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	context context.Context,
	cfg *config.Config,
	log *slog.Logger,
	verifier middleware.TokenVerifier,
	refresher middleware.ClaimRefresher,
	gate middleware.GateConfig,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Authenticate must come
	// before RouteGate so the gate can read the session claim.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, refresher))
	r.Use(middleware.RouteGate(gate))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Account.Routes())

		api.Route("/writings", h.Writing.RegisterRoutes)
		api.Route("/books", h.Book.RegisterRoutes)
		api.Route("/media", h.Media.RegisterRoutes)
		api.Route("/gallery", h.Gallery.RegisterRoutes)
		api.Route("/posts", h.Post.RegisterRoutes)
		api.Route("/comments", h.Comment.RegisterRoutes)
		api.Route("/tributes", h.Tribute.RegisterRoutes)
		api.Route("/subscribers", h.Subscriber.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
