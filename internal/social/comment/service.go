package comment

import (
	"context"
	"log/slog"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/validate"
	"github.com/rafidhsn/smriti/pkg/spamfilter"
	"github.com/rafidhsn/smriti/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListByWriting(context context.Context, writingID string, limit, offset int) ([]*Comment, int, error) {
	return service.repo.ListByWriting(context, writingID, limit, offset)
}

func (service *Service) ListByPost(context context.Context, postID string, limit, offset int) ([]*Comment, int, error) {
	return service.repo.ListByPost(context, postID, limit, offset)
}

// CreateComment validates and persists a reader's comment.
//
// Exactly one of WritingID and PostID must be set. The body is screened for
// links and contact information before any store mutation; a match rejects
// the whole submission with a localized message.
func (service *Service) CreateComment(context context.Context, comment *Comment, authorID string) error {

	hasWriting := comment.WritingID != nil && *comment.WritingID != ""
	hasPost := comment.PostID != nil && *comment.PostID != ""
	if hasWriting == hasPost {
		return apperr.ValidationError("Exactly one of writing_id and post_id must be provided")
	}

	validator := &validate.Validator{}
	validator.Required(FieldBody, comment.Body).
		MinLen(FieldBody, comment.Body, MinBodyLen).
		MaxLen(FieldBody, comment.Body, 2000)
	if err := validator.Err(); err != nil {
		return err
	}

	if pattern, matched := spamfilter.Match(comment.Body); pattern != "" {
		service.logger.Info("comment_rejected_spam",
			slog.String("author_id", authorID),
			slog.String("pattern", pattern),
			slog.String("matched", matched),
		)
		return apperr.ValidationError(MsgContactInfoRejected)
	}

	comment.ID = uuid.New()
	comment.AuthorID = authorID

	if err := service.repo.CreateComment(context, comment); err != nil {
		return err
	}

	service.logger.Info("comment_created", slog.String("comment_id", comment.ID))
	return nil
}

// DeleteComment removes a comment. Only its author may delete it, with one
// exception: administrators may moderate any comment away.
func (service *Service) DeleteComment(context context.Context, id, actorID string, isAdministrative bool) error {
	existing, err := service.repo.GetComment(context, id)
	if err != nil {
		return err
	}

	if existing.AuthorID != actorID && !isAdministrative {
		return apperr.Forbidden("Only the author can delete this comment")
	}

	if err := service.repo.DeleteComment(context, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted",
		slog.String("comment_id", id),
		slog.String("actor_id", actorID),
	)
	return nil
}
