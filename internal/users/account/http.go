// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafidhsn/smriti/internal/platform/middleware"
	requestutil "github.com/rafidhsn/smriti/internal/platform/request"
	"github.com/rafidhsn/smriti/internal/platform/respond"
	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/internal/platform/validate"
	"github.com/rafidhsn/smriti/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements account management HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with profile, session and admin routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Authenticated self-service endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.getProfile)
		r.Patch("/me", handler.updateProfile)
		r.Put("/me/username", handler.changeUsername)
		r.Delete("/me", handler.deleteAccount)
		r.Get("/me/sessions", handler.listSessions)
		r.Delete("/me/sessions/{sessionID}", handler.revokeSession)
	})

	// Back-office endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdministrative)
		r.Get("/", handler.listAccounts)
		r.Put("/{userID}/role", handler.changeRole)
	})

	return router
}

// # Request Payloads

type updateProfileRequest struct {
	Name            *string `json:"name"`
	Bio             *string `json:"bio"`
	Image           *string `json:"image"`
	NotifyOnComment *bool   `json:"notify_on_comment"`
	NotifyOnNews    *bool   `json:"notify_on_news"`
}

type changeUsernameRequest struct {
	Username string `json:"username"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

/*
GetProfile returns the authenticated user's private profile.

GET /api/v1/accounts/me

Response:
  - 200: auth.User: Full private profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
UpdateProfile applies partial changes to the authenticated user's profile.

PATCH /api/v1/accounts/me

Request:
  - Body: updateProfileRequest (all fields optional)

Response:
  - 200: auth.User: Updated profile
  - 400: ErrInvalidJSON: Bad input
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Image != nil && *input.Image != "" {
		v := &validate.Validator{}
		v.URL("image", *input.Image)
		if err := v.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		Name:            input.Name,
		Bio:             input.Bio,
		Image:           input.Image,
		NotifyOnComment: input.NotifyOnComment,
		NotifyOnNews:    input.NotifyOnNews,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
ChangeUsername applies a rate-limited username change.

PUT /api/v1/accounts/me/username

Request:
  - Body: changeUsernameRequest (Username)

Response:
  - 200: Success message
  - 400: Cooldown violation or validation failure
  - 409: ErrConflict: Username already taken
*/
func (handler *Handler) changeUsername(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changeUsernameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username).MinLen("username", input.Username, 3)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.ChangeUsername(request.Context(), userID, input.Username); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Username updated successfully"})
}

/*
DeleteAccount soft-deletes the authenticated account and signs out everywhere.

DELETE /api/v1/accounts/me

Response:
  - 204: No Content: Account deleted
*/
func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ListSessions returns the authenticated user's active device sessions.

GET /api/v1/accounts/me/sessions

Response:
  - 200: []SessionInfo: Active devices
*/
func (handler *Handler) listSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessions, err := handler.accountService.ListSessions(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessions)
}

/*
RevokeSession terminates a specific device session owned by the user.

DELETE /api/v1/accounts/me/sessions/{sessionID}

Response:
  - 204: No Content: Session revoked
*/
func (handler *Handler) revokeSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID := requestutil.ID(request, "sessionID")
	if err := handler.accountService.RevokeSession(request.Context(), userID, sessionID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ListAccounts returns a paginated back-office listing of members.

GET /api/v1/accounts

Response:
  - 200: Paginated []auth.User
  - 403: ErrForbidden: Administrator access required
*/
func (handler *Handler) listAccounts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.ListAccounts(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ChangeRole mutates the role of a target account.

PUT /api/v1/accounts/{userID}/role

Request:
  - Body: changeRoleRequest (Role)

Response:
  - 200: Success message
  - 403: ErrForbidden: Insufficient privilege for the requested change
*/
func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changeRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	targetID := requestutil.ID(request, "userID")
	err = handler.accountService.ChangeRole(
		request.Context(),
		claims.UserID,
		sec.UserRole(claims.Role),
		targetID,
		sec.UserRole(input.Role),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Role updated successfully"})
}
