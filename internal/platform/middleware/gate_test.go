// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafidhsn/smriti/internal/platform/ctxutil"
	"github.com/rafidhsn/smriti/internal/platform/middleware"
	"github.com/rafidhsn/smriti/internal/platform/sec"
)

func testGateConfig() middleware.GateConfig {
	return middleware.GateConfig{
		AdminPrefix: "/admin",
		AuthPages:   []string{"/login", "/register"},
		AdminHome:   "/admin",
		SiteHome:    "/",
		Login:       "/login",
	}
}

/*
TestRouteGate exercises the full decision table: first match wins, redirects
only, pass-through otherwise.
*/
func TestRouteGate(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		role         string // empty means no session
		wantStatus   int
		wantLocation string
	}{
		// Auth pages repel signed-in users
		{"login_admin_session", "/login", "ADMIN", http.StatusSeeOther, "/admin"},
		{"login_super_admin_session", "/login", "SUPER_ADMIN", http.StatusSeeOther, "/admin"},
		{"register_editor_session", "/register", "EDITOR", http.StatusSeeOther, "/admin"},
		{"login_user_session", "/login", "USER", http.StatusSeeOther, "/"},
		{"login_no_session", "/login", "", http.StatusOK, ""},

		// Admin prefix requires an administrative session
		{"admin_no_session", "/admin/writings", "", http.StatusSeeOther, "/login"},
		{"admin_root_no_session", "/admin", "", http.StatusSeeOther, "/login"},
		{"admin_user_session", "/admin/writings", "USER", http.StatusSeeOther, "/"},
		{"admin_manager_session", "/admin/tributes", "MANAGER", http.StatusOK, ""},
		{"admin_editor_session", "/admin", "EDITOR", http.StatusOK, ""},

		// Everything else passes through unmodified
		{"public_page_no_session", "/writings/amar-gan", "", http.StatusOK, ""},
		{"public_page_user_session", "/writings/amar-gan", "USER", http.StatusOK, ""},
		{"administrator_on_public_page", "/", "ADMIN", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := middleware.RouteGate(testGateConfig())
			handler := gate(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.role != "" {
				ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{
					UserID: "user-1",
					Role:   tt.role,
				})
				request = request.WithContext(ctx)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))
		})
	}
}

/*
TestRequireAdministrative checks the API-side role guard that backs the
defense-in-depth requirement for routes outside the gate's path matcher.
*/
func TestRequireAdministrative(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"no_session", "", http.StatusUnauthorized},
		{"user_role", "USER", http.StatusForbidden},
		{"manager_role", "MANAGER", http.StatusOK},
		{"super_admin_role", "SUPER_ADMIN", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireAdministrative(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/42", nil)
			if tt.role != "" {
				ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u", Role: tt.role})
				request = request.WithContext(ctx)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
