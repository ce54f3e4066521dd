package writing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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
	router.Get("/", handler.listWritings)
	router.Get("/{slug}", handler.getWriting)

	// Administrative only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth)
		adminRoute.Use(middleware.RequireAdministrative)

		adminRoute.Post("/", handler.createWriting)
		adminRoute.Patch("/{id}", handler.updateWriting)
		adminRoute.Delete("/{id}", handler.deleteWriting)
	})
}

func (handler *Handler) listWritings(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Kind:  Kind(request.URL.Query().Get("kind")),
	}

	// Unpublished drafts are visible to administrators only.
	claims := requestutil.Claims(request)
	filter.PublishedOnly = claims == nil || !sec.UserRole(claims.Role).IsAdministrative()

	writings, total, err := handler.service.ListWritings(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, writings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getWriting(writer http.ResponseWriter, request *http.Request) {
	slugValue := requestutil.Param(request, "slug")

	w, err := handler.service.GetWritingBySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, w)
}

func (handler *Handler) createWriting(writer http.ResponseWriter, request *http.Request) {
	var input Writing
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateWriting(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateWriting(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Writing
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateWriting(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteWriting(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteWriting(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
