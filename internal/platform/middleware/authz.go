// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/ctxutil"
	"github.com/rafidhsn/smriti/internal/platform/respond"
	"github.com/rafidhsn/smriti/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the `sec`
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// ClaimRefresher re-derives the live claim fields from the user store.
//
// # Why refresh on read?
//
// Access tokens are stateless: a role change by an administrator would
// otherwise not take effect until the token expires. Refreshing {role, name}
// from the store on every authenticated request guarantees the change applies
// on the user's very next request, at the cost of one lookup per request.
// The refresher must also fail for soft-deleted accounts, giving the sign-in
// pipeline its second, independent active-account check.
type ClaimRefresher interface {
	RefreshClaims(ctx context.Context, userID string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Re-fetch {role, name} via [ClaimRefresher] and overwrite the claim.
//  5. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier, refresher ClaimRefresher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Claim Refresh ──────────────────────────────────────────────
			// Overwrite the token snapshot with live store values. A deleted
			// account fails here even if its token is still cryptographically
			// valid.
			if refresher != nil {
				identity, err := refresher.RefreshClaims(request.Context(), claims.UserID)
				if err != nil {
					respond.Error(writer, request, apperr.Unauthorized("Account is not active"))
					return
				}
				claims.Role = string(identity.Role)
				claims.Name = identity.Name
				claims.Email = identity.Email
				claims.Image = identity.Image
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Mutating handlers
// additionally re-verify claims themselves; this guard is the first line,
// not the only one.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdministrative blocks requests whose role is outside the admin set.
//
// # Usage
//
// Must be registered AFTER [Authenticate]. It implies [RequireAuth], so the
// two never need to be mounted together. The admin set is defined once by
// [sec.UserRole.IsAdministrative].
func RequireAdministrative(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if !sec.UserRole(claims.Role).IsAdministrative() {
			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
