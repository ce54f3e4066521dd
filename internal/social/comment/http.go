package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rafidhsn/smriti/internal/platform/apperr"
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
	// Public reads, keyed by parent
	router.Get("/", handler.listComments)

	// Signed-in members only
	router.Group(func(memberRoute chi.Router) {
		memberRoute.Use(middleware.RequireAuth)

		memberRoute.Post("/", handler.createComment)
		memberRoute.Delete("/{id}", handler.deleteComment)
	})
}

// listComments resolves the parent from the query string: exactly one of
// writing_id and post_id must be present.
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	writingID := request.URL.Query().Get("writing_id")
	postID := request.URL.Query().Get("post_id")
	if (writingID == "") == (postID == "") {
		respond.Error(writer, request, apperr.ValidationError("Exactly one of writing_id and post_id must be provided"))
		return
	}

	var (
		comments []*Comment
		total    int
		err      error
	)
	if writingID != "" {
		comments, total, err = handler.service.ListByWriting(request.Context(), writingID, paginationParams.Limit, paginationParams.Offset())
	} else {
		comments, total, err = handler.service.ListByPost(request.Context(), postID, paginationParams.Limit, paginationParams.Offset())
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Comment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateComment(request.Context(), &input, claims.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	isAdministrative := sec.UserRole(claims.Role).IsAdministrative()

	if err := handler.service.DeleteComment(request.Context(), id, claims.UserID, isAdministrative); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
