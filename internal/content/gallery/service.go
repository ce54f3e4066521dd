package gallery

import (
	"context"
	"log/slog"

	"github.com/rafidhsn/smriti/internal/content/moderation"
	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/validate"
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

func (service *Service) ListImages(context context.Context, filter Filter, limit, offset int) ([]*Image, int, error) {
	return service.repo.ListImages(context, filter, limit, offset)
}

func (service *Service) GetImage(context context.Context, id string) (*Image, error) {
	return service.repo.GetImage(context, id)
}

// SubmitImage creates a gallery image on behalf of a submitter. The stored
// status goes through [moderation.Submitted]: non-administrators always land
// in the PENDING queue no matter what status the request carried.
func (service *Service) SubmitImage(context context.Context, image *Image, submitterID string, isAdministrative bool) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, image.Title).MaxLen(FieldTitle, image.Title, 300)
	validator.Required(FieldImageURL, image.ImageURL).URL(FieldImageURL, image.ImageURL)
	validator.MaxLen(FieldCaption, image.Caption, 1000)

	if err := validator.Err(); err != nil {
		return err
	}

	image.ID = uuid.New()
	image.Status = moderation.Submitted(isAdministrative, image.Status)
	if submitterID != "" {
		image.SubmitterID = &submitterID
	}

	if err := service.repo.CreateImage(context, image); err != nil {
		return err
	}

	service.logger.Info("gallery_image_submitted",
		slog.String("image_id", image.ID),
		slog.String("status", string(image.Status)),
	)
	return nil
}

// Moderate moves an image to a new review status.
func (service *Service) Moderate(context context.Context, id string, status moderation.Status) error {
	if !status.Valid() {
		return apperr.ValidationError("Unknown review status")
	}

	if err := service.repo.UpdateStatus(context, id, string(status)); err != nil {
		return err
	}

	service.logger.Info("gallery_image_moderated",
		slog.String("image_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

func (service *Service) DeleteImage(context context.Context, id string) error {
	if err := service.repo.DeleteImage(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_image_deleted", slog.String("image_id", id))
	return nil
}
