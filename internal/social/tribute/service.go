package tribute

import (
	"context"
	"log/slog"

	"github.com/rafidhsn/smriti/internal/content/moderation"
	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/validate"
	"github.com/rafidhsn/smriti/pkg/spamfilter"
	"github.com/rafidhsn/smriti/pkg/uuid"
)

const (
	MinBodyLen = 10
	MaxBodyLen = 5000
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

func (service *Service) ListTributes(context context.Context, f Filter, limit, offset int) ([]*Tribute, int, error) {
	return service.repo.ListTributes(context, f, limit, offset)
}

// SubmitTribute validates and persists a tribute. Anonymous visitors provide
// only a display name; signed-in members are linked through authorID.
// Non-administrator submissions always start PENDING.
func (service *Service) SubmitTribute(context context.Context, tribute *Tribute, authorID *string, isAdministrative bool) error {
	validator := &validate.Validator{}
	validator.Required(FieldAuthorName, tribute.AuthorName).
		MaxLen(FieldAuthorName, tribute.AuthorName, 150).
		Required(FieldBody, tribute.Body).
		MinLen(FieldBody, tribute.Body, MinBodyLen).
		MaxLen(FieldBody, tribute.Body, MaxBodyLen)
	if err := validator.Err(); err != nil {
		return err
	}

	if pattern, matched := spamfilter.Match(tribute.Body); pattern != "" {
		service.logger.Info("tribute_rejected_spam",
			slog.String("pattern", pattern),
			slog.String("matched", matched),
		)
		return apperr.ValidationError(MsgContactInfoRejected)
	}

	tribute.ID = uuid.New()
	tribute.AuthorID = authorID
	tribute.Status = moderation.Submitted(isAdministrative, tribute.Status)

	if err := service.repo.CreateTribute(context, tribute); err != nil {
		return err
	}

	service.logger.Info("tribute_submitted",
		slog.String("tribute_id", tribute.ID),
		slog.String("status", string(tribute.Status)),
	)
	return nil
}

// Moderate sets the moderation status of a tribute.
func (service *Service) Moderate(context context.Context, id string, status moderation.Status) error {
	if !status.Valid() {
		return apperr.ValidationError("Invalid moderation status")
	}

	if err := service.repo.UpdateStatus(context, id, string(status)); err != nil {
		return err
	}

	service.logger.Info("tribute_moderated",
		slog.String("tribute_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

func (service *Service) DeleteTribute(context context.Context, id string) error {
	if err := service.repo.DeleteTribute(context, id); err != nil {
		return err
	}

	service.logger.Info("tribute_deleted", slog.String("tribute_id", id))
	return nil
}
