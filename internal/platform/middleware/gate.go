// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/rafidhsn/smriti/internal/platform/ctxutil"
	"github.com/rafidhsn/smriti/internal/platform/sec"
)

// GateConfig is the explicit, constructor-injected configuration for the
// route gate. No ambient globals: main.go builds one from [config.Config]
// and passes it down.
type GateConfig struct {
	// AdminPrefix is the gated back-office path prefix (e.g. "/admin").
	AdminPrefix string

	// AuthPages are the sign-in/sign-up paths authenticated users are
	// redirected away from (e.g. "/login", "/register").
	AuthPages []string

	// AdminHome is the redirect target for administrative users.
	AdminHome string

	// SiteHome is the redirect target for everyone else.
	SiteHome string

	// Login is the redirect target for unauthenticated back-office requests.
	Login string
}

// RouteGate intercepts page requests before any route-specific logic.
//
// # Decision Table (first match wins, evaluated statelessly per request)
//
//	auth page + session + administrative role  → redirect to admin home
//	auth page + session (any role)             → redirect to site home
//	admin prefix + no session                  → redirect to login
//	admin prefix + session + non-admin role    → redirect to site home
//	otherwise                                  → pass through unmodified
//
// Unauthorized requests are always redirected, never shown a 403 page, and
// never reach a store-backed handler. Must be mounted AFTER [Authenticate]
// so the session claim is already in context.
func RouteGate(cfg GateConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			path := request.URL.Path

			isAdministrative := claims != nil && sec.UserRole(claims.Role).IsAdministrative()

			// ── 1–2. Auth pages repel signed-in users ─────────────────────────
			if cfg.isAuthPage(path) && claims != nil {
				if isAdministrative {
					http.Redirect(writer, request, cfg.AdminHome, http.StatusSeeOther)
					return
				}
				http.Redirect(writer, request, cfg.SiteHome, http.StatusSeeOther)
				return
			}

			// ── 3–4. Admin prefix requires an administrative session ──────────
			if cfg.isAdminPath(path) {
				if claims == nil {
					http.Redirect(writer, request, cfg.Login, http.StatusSeeOther)
					return
				}
				if !isAdministrative {
					http.Redirect(writer, request, cfg.SiteHome, http.StatusSeeOther)
					return
				}
			}

			// ── 5. Everything else proceeds unmodified ────────────────────────
			next.ServeHTTP(writer, request)
		})
	}
}

// isAuthPage reports whether path is one of the configured auth pages.
func (cfg GateConfig) isAuthPage(path string) bool {
	trimmed := strings.TrimSuffix(path, "/")
	for _, page := range cfg.AuthPages {
		if trimmed == page || path == page {
			return true
		}
	}
	return false
}

// isAdminPath reports whether path falls under the gated admin prefix.
func (cfg GateConfig) isAdminPath(path string) bool {
	if path == cfg.AdminPrefix {
		return true
	}
	return strings.HasPrefix(path, cfg.AdminPrefix+"/")
}
