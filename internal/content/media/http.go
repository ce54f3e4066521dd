package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rafidhsn/smriti/internal/platform/middleware"
	requestutil "github.com/rafidhsn/smriti/internal/platform/request"
	"github.com/rafidhsn/smriti/internal/platform/respond"
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
	router.Get("/", handler.listMedia)
	router.Get("/{slug}", handler.getMedia)

	// Administrative only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth)
		adminRoute.Use(middleware.RequireAdministrative)

		adminRoute.Post("/", handler.createMedia)
		adminRoute.Patch("/{id}", handler.updateMedia)
		adminRoute.Delete("/{id}", handler.deleteMedia)
	})
}

func (handler *Handler) listMedia(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Kind:  Kind(request.URL.Query().Get("kind")),
	}

	items, total, err := handler.service.ListMedia(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMedia(writer http.ResponseWriter, request *http.Request) {
	slugValue := requestutil.Param(request, "slug")

	m, err := handler.service.GetMediaBySlug(request.Context(), slugValue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) createMedia(writer http.ResponseWriter, request *http.Request) {
	var input Media
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMedia(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMedia(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Media
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMedia(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMedia(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteMedia(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
