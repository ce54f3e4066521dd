package tribute

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
	// Visitors may read and submit without an account
	router.Get("/", handler.listTributes)
	router.Post("/", handler.submitTribute)

	// Moderation
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth, middleware.RequireAdministrative)

		adminRoute.Put("/{id}/status", handler.moderateTribute)
		adminRoute.Delete("/{id}", handler.deleteTribute)
	})
}

// listTributes shows approved tributes to everyone. Administrators may
// request another status with ?status=.
func (handler *Handler) listTributes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{Status: moderation.StatusApproved}

	claims := requestutil.Claims(request)
	if claims != nil && sec.UserRole(claims.Role).IsAdministrative() {
		filter.Status = moderation.Status(request.URL.Query().Get("status"))
	}

	tributes, total, err := handler.service.ListTributes(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tributes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) submitTribute(writer http.ResponseWriter, request *http.Request) {
	var input Tribute
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var (
		authorID         *string
		isAdministrative bool
	)
	if claims := requestutil.Claims(request); claims != nil {
		authorID = &claims.UserID
		isAdministrative = sec.UserRole(claims.Role).IsAdministrative()
	}

	if err := handler.service.SubmitTribute(request.Context(), &input, authorID, isAdministrative); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) moderateTribute(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input struct {
		Status moderation.Status `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Moderate(request.Context(), id, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"id": id, "status": string(input.Status)})
}

func (handler *Handler) deleteTribute(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteTribute(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
