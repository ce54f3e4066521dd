package gallery

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
	router.Get("/", handler.listImages)

	// Any signed-in member may submit; moderation forces PENDING for non-admins.
	router.With(middleware.RequireAuth).Post("/", handler.submitImage)

	// Administrative only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth)
		adminRoute.Use(middleware.RequireAdministrative)

		adminRoute.Put("/{id}/status", handler.moderateImage)
		adminRoute.Delete("/{id}", handler.deleteImage)
	})
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	// The public sees approved images only; administrators may filter by
	// any status (defaulting to all).
	filter := Filter{Status: moderation.StatusApproved}
	claims := requestutil.Claims(request)
	if claims != nil && sec.UserRole(claims.Role).IsAdministrative() {
		filter.Status = moderation.Status(request.URL.Query().Get("status"))
	}

	images, total, err := handler.service.ListImages(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, images, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) submitImage(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Image
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdministrative := sec.UserRole(claims.Role).IsAdministrative()
	if err := handler.service.SubmitImage(request.Context(), &input, claims.UserID, isAdministrative); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

type moderateRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) moderateImage(writer http.ResponseWriter, request *http.Request) {
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
	respond.OK(writer, map[string]string{"message": "Image status updated"})
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteImage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
