package media

import (
	"context"
	"log/slog"
	"strings"

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

func (service *Service) ListMedia(context context.Context, filter Filter, limit, offset int) ([]*Media, int, error) {
	return service.repo.ListMedia(context, filter, limit, offset)
}

func (service *Service) GetMediaBySlug(context context.Context, slugValue string) (*Media, error) {
	return service.repo.GetMediaBySlug(context, slugValue)
}

func (service *Service) CreateMedia(context context.Context, media *Media) error {
	if err := service.validateMedia(media); err != nil {
		return err
	}

	media.ID = uuid.New()

	base := slug.From(media.Title)
	if base == "" {
		base = slug.Fallback(string(media.Kind))
	}
	unique, err := slug.Unique(context, base, service.repo.SlugExists)
	if err != nil {
		return err
	}
	media.Slug = unique

	latinBase := slug.Transliterate(media.Title)
	if latinBase == "" {
		latinBase = media.Slug
	}
	latinUnique, err := slug.Unique(context, latinBase, service.repo.SlugExists)
	if err != nil {
		return err
	}
	media.SlugLatin = latinUnique

	if err := service.repo.CreateMedia(context, media); err != nil {
		return err
	}

	service.logger.Info("media_created",
		slog.String("media_id", media.ID),
		slog.String("kind", string(media.Kind)),
	)
	return nil
}

func (service *Service) UpdateMedia(context context.Context, id string, media *Media) error {
	if err := service.validateMedia(media); err != nil {
		return err
	}

	media.ID = id
	if err := service.repo.UpdateMedia(context, media); err != nil {
		return err
	}

	service.logger.Info("media_updated", slog.String("media_id", id))
	return nil
}

func (service *Service) DeleteMedia(context context.Context, id string) error {
	if err := service.repo.DeleteMedia(context, id); err != nil {
		return err
	}

	service.logger.Warn("media_deleted", slog.String("media_id", id))
	return nil
}

func (service *Service) validateMedia(media *Media) error {
	if !media.Kind.Valid() {
		return apperr.ValidationError("Unknown media kind")
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, media.Title).MaxLen(FieldTitle, media.Title, 300)
	validator.Required(FieldSourceURL, media.SourceURL)

	// Local file paths (e.g. "/media/audio/xyz.mp3") skip the URL rule.
	if !strings.HasPrefix(media.SourceURL, "/") {
		validator.URL(FieldSourceURL, media.SourceURL)
	}

	return validator.Err()
}
