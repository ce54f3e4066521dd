package writing

import (
	"context"
	"log/slog"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/validate"
	"github.com/rafidhsn/smriti/pkg/slug"
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

func (service *Service) ListWritings(context context.Context, filter Filter, limit, offset int) ([]*Writing, int, error) {
	return service.repo.ListWritings(context, filter, limit, offset)
}

func (service *Service) GetWriting(context context.Context, id string) (*Writing, error) {
	return service.repo.GetWriting(context, id)
}

// GetWritingBySlug resolves either slug form (Bengali or transliterated).
func (service *Service) GetWritingBySlug(context context.Context, slugValue string) (*Writing, error) {
	return service.repo.GetWritingBySlug(context, slugValue)
}

func (service *Service) CreateWriting(context context.Context, writing *Writing) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, writing.Title).MaxLen(FieldTitle, writing.Title, 300)
	validator.Required(FieldBody, writing.Body)
	if !writing.Kind.Valid() {
		return apperr.ValidationError("Unknown writing kind")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	writing.ID = uuid.New()

	// Both slug forms derive from the title. An all-punctuation title falls
	// back to a timestamped slug keyed by kind.
	base := slug.From(writing.Title)
	if base == "" {
		base = slug.Fallback(string(writing.Kind))
	}

	unique, err := slug.Unique(context, base, service.repo.SlugExists)
	if err != nil {
		return err
	}
	writing.Slug = unique

	latinBase := slug.Transliterate(writing.Title)
	if latinBase == "" {
		latinBase = writing.Slug
	}
	latinUnique, err := slug.Unique(context, latinBase, service.repo.SlugExists)
	if err != nil {
		return err
	}
	writing.SlugLatin = latinUnique

	if err := service.repo.CreateWriting(context, writing); err != nil {
		return err
	}

	service.logger.Info("writing_created",
		slog.String("writing_id", writing.ID),
		slog.String("kind", string(writing.Kind)),
		slog.String("slug", writing.Slug),
	)
	return nil
}

// UpdateWriting mutates title, body and metadata. Slugs are stable: they are
// never regenerated on title edits so published URLs keep working.
func (service *Service) UpdateWriting(context context.Context, id string, writing *Writing) error {
	existing, err := service.repo.GetWriting(context, id)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, writing.Title).MaxLen(FieldTitle, writing.Title, 300)
	validator.Required(FieldBody, writing.Body)
	if !writing.Kind.Valid() {
		return apperr.ValidationError("Unknown writing kind")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	writing.ID = existing.ID
	writing.Slug = existing.Slug
	writing.SlugLatin = existing.SlugLatin

	if err := service.repo.UpdateWriting(context, writing); err != nil {
		return err
	}

	service.logger.Info("writing_updated", slog.String("writing_id", writing.ID))
	return nil
}

func (service *Service) DeleteWriting(context context.Context, id string) error {
	if err := service.repo.DeleteWriting(context, id); err != nil {
		return err
	}

	service.logger.Warn("writing_deleted", slog.String("writing_id", id))
	return nil
}
