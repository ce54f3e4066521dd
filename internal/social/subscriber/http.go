package subscriber

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
	router.Post("/", handler.subscribe)
	router.Post("/unsubscribe", handler.unsubscribe)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth, middleware.RequireAdministrative)

		adminRoute.Get("/", handler.listSubscribers)
	})
}

type emailInput struct {
	Email string `json:"email"`
}

func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var input emailInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sub, err := handler.service.Subscribe(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, sub)
}

func (handler *Handler) unsubscribe(writer http.ResponseWriter, request *http.Request) {
	var input emailInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unsubscribe(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listSubscribers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	activeOnly := request.URL.Query().Get("active") == "true"

	subscribers, total, err := handler.service.ListSubscribers(request.Context(), activeOnly, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, subscribers, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
