package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rafidhsn/smriti/internal/content/moderation"
	"github.com/rafidhsn/smriti/internal/platform/middleware"
	requestutil "github.com/rafidhsn/smriti/internal/platform/request"
	"github.com/rafidhsn/smriti/internal/platform/respond"
	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listPosts)
	router.Get("/{slug}", handler.getPost)

	// Any signed-in member may write; moderation forces PENDING for non-admins.
	router.Group(func(memberRoute chi.Router) {
		memberRoute.Use(middleware.RequireAuth)

		memberRoute.Post("/", handler.submitPost)
		memberRoute.Patch("/{id}", handler.updatePost)
		memberRoute.Delete("/{id}", handler.deletePost)
	})

	// Administrative only
	router.With(middleware.RequireAuth, middleware.RequireAdministrative).
		Put("/{id}/status", handler.moderatePost)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	// The public sees approved posts only; administrators may filter by any status.
	filter := Filter{
		Status: moderation.StatusApproved,
		Query:  request.URL.Query().Get("q"),
	}
	claims := requestutil.Claims(request)
	if claims != nil && sec.UserRole(claims.Role).IsAdministrative() {
		filter.Status = moderation.Status(request.URL.Query().Get("status"))
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	slugValue := requestutil.Param(request, "slug")

	p, err := handler.service.GetPostBySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) submitPost(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdministrative := sec.UserRole(claims.Role).IsAdministrative()
	if err := handler.service.SubmitPost(request.Context(), &input, claims.UserID, isAdministrative); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")

	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdministrative := sec.UserRole(claims.Role).IsAdministrative()
	if err := handler.service.UpdatePost(request.Context(), id, claims.UserID, isAdministrative, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

type moderateRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) moderatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input moderateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Moderate(request.Context(), id, moderation.Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Post status updated"})
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	isAdministrative := sec.UserRole(claims.Role).IsAdministrative()

	if err := handler.service.DeletePost(request.Context(), id, claims.UserID, isAdministrative); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
