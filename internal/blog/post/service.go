package post

import (
	"context"
	"log/slog"

	"github.com/rafidhsn/smriti/internal/content/moderation"
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

func (service *Service) ListPosts(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	return service.repo.ListPosts(context, filter, limit, offset)
}

func (service *Service) GetPostBySlug(context context.Context, slugValue string) (*Post, error) {
	return service.repo.GetPostBySlug(context, slugValue)
}

// SubmitPost creates a post on behalf of its author. Non-administrators
// always land in the PENDING queue regardless of the requested status.
func (service *Service) SubmitPost(context context.Context, post *Post, authorID string, isAdministrative bool) error {
	if err := validatePost(post); err != nil {
		return err
	}

	post.ID = uuid.New()
	post.AuthorID = authorID
	post.Status = moderation.Submitted(isAdministrative, post.Status)

	base := slug.From(post.Title)
	if base == "" {
		base = slug.Fallback("post")
	}
	unique, err := slug.Unique(context, base, service.repo.SlugExists)
	if err != nil {
		return err
	}
	post.Slug = unique

	latinBase := slug.Transliterate(post.Title)
	if latinBase == "" {
		latinBase = post.Slug
	}
	latinUnique, err := slug.Unique(context, latinBase, service.repo.SlugExists)
	if err != nil {
		return err
	}
	post.SlugLatin = latinUnique

	if err := service.repo.CreatePost(context, post); err != nil {
		return err
	}

	service.logger.Info("post_submitted",
		slog.String("post_id", post.ID),
		slog.String("author_id", authorID),
		slog.String("status", string(post.Status)),
	)
	return nil
}

// UpdatePost mutates a post's title and content. Only the author or an
// administrator may edit; an edited non-administrator post returns to the
// PENDING queue for re-review.
func (service *Service) UpdatePost(context context.Context, id, actorID string, isAdministrative bool, post *Post) error {
	existing, err := service.repo.GetPost(context, id)
	if err != nil {
		return err
	}

	if existing.AuthorID != actorID && !isAdministrative {
		return apperr.Forbidden("Only the author can edit this post")
	}

	if err := validatePost(post); err != nil {
		return err
	}

	existing.Title = post.Title
	existing.Content = post.Content
	if !isAdministrative {
		existing.Status = moderation.StatusPending
	}

	if err := service.repo.UpdatePost(context, existing); err != nil {
		return err
	}
	*post = *existing

	service.logger.Info("post_updated", slog.String("post_id", id))
	return nil
}

// Moderate moves a post to a new review status.
func (service *Service) Moderate(context context.Context, id string, status moderation.Status) error {
	if !status.Valid() {
		return apperr.ValidationError("Unknown review status")
	}

	if err := service.repo.UpdateStatus(context, id, string(status)); err != nil {
		return err
	}

	service.logger.Info("post_moderated", slog.String("post_id", id), slog.String("status", string(status)))
	return nil
}

// DeletePost removes a post. Authors may delete their own; administrators
// may delete any.
func (service *Service) DeletePost(context context.Context, id, actorID string, isAdministrative bool) error {
	existing, err := service.repo.GetPost(context, id)
	if err != nil {
		return err
	}

	if existing.AuthorID != actorID && !isAdministrative {
		return apperr.Forbidden("Only the author can delete this post")
	}

	if err := service.repo.DeletePost(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))
	return nil
}

func validatePost(post *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title).
		MinLen(FieldTitle, post.Title, MinTitleLen).
		MaxLen(FieldTitle, post.Title, 300)
	validator.Required(FieldContent, post.Content).
		MinLen(FieldContent, post.Content, MinContentLen)
	return validator.Err()
}
