// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

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

	"github.com/longpd/folio/internal/content/achievement"
	"github.com/longpd/folio/internal/content/blog"
	"github.com/longpd/folio/internal/content/gallery"
	"github.com/longpd/folio/internal/content/project"
	"github.com/longpd/folio/internal/inbox"
	"github.com/longpd/folio/internal/platform/config"
	"github.com/longpd/folio/internal/platform/constants"
	"github.com/longpd/folio/internal/platform/middleware"
	"github.com/longpd/folio/internal/profile"
	"github.com/longpd/folio/internal/settings"
	"github.com/longpd/folio/internal/stats"
	"github.com/longpd/folio/internal/users/auth"
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

	// Auth handles admin authentication (login, refresh, logout).
	Auth *auth.Handler

	// Project serves the portfolio projects.
	Project *project.Handler

	// Achievement serves awards, certificates and publications.
	Achievement *achievement.Handler

	// Gallery serves the photo collections.
	Gallery *gallery.Handler

	// Blog serves posts and their rendered HTML.
	Blog *blog.Handler

	// Profile serves the résumé sections.
	Profile *profile.Handler

	// Settings serves the key/value site configuration.
	Settings *settings.Handler

	// Inbox handles contact-form messages.
	Inbox *inbox.Handler

	// Stats serves the per-item view counters.
	Stats *stats.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
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
		api.Mount("/projects", h.Project.Routes())
		api.Mount("/achievements", h.Achievement.Routes())
		api.Mount("/gallery", h.Gallery.Routes())
		api.Mount("/blogs", h.Blog.Routes())
		api.Mount("/profile", h.Profile.Routes())
		api.Mount("/settings", h.Settings.Routes())
		api.Mount("/messages", h.Inbox.Routes())
		api.Mount("/stats", h.Stats.Routes())

		// Draft-inclusive admin listing lives under its own prefix.
		api.Mount("/admin/blogs", h.Blog.AdminRoutes())
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
