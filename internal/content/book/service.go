package book

import (
	"context"
	"log/slog"
	"time"

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

func (service *Service) ListBooks(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.repo.ListBooks(context, filter, limit, offset)
}

func (service *Service) GetBookBySlug(context context.Context, slugValue string) (*Book, error) {
	return service.repo.GetBookBySlug(context, slugValue)
}

func (service *Service) CreateBook(context context.Context, book *Book) error {
	if err := service.validateBook(book); err != nil {
		return err
	}

	book.ID = uuid.New()

	base := slug.From(book.Title)
	if base == "" {
		base = slug.Fallback("book")
	}
	unique, err := slug.Unique(context, base, service.repo.SlugExists)
	if err != nil {
		return err
	}
	book.Slug = unique

	latinBase := slug.Transliterate(book.Title)
	if latinBase == "" {
		latinBase = book.Slug
	}
	latinUnique, err := slug.Unique(context, latinBase, service.repo.SlugExists)
	if err != nil {
		return err
	}
	book.SlugLatin = latinUnique

	if err := service.repo.CreateBook(context, book); err != nil {
		return err
	}

	service.logger.Info("book_created", slog.String("book_id", book.ID), slog.String("slug", book.Slug))
	return nil
}

func (service *Service) UpdateBook(context context.Context, id string, book *Book) error {
	if err := service.validateBook(book); err != nil {
		return err
	}

	book.ID = id
	if err := service.repo.UpdateBook(context, book); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.String("book_id", id))
	return nil
}

func (service *Service) DeleteBook(context context.Context, id string) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	return nil
}

func (service *Service) validateBook(book *Book) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 300)
	if book.CoverURL != nil {
		validator.URL(FieldCoverURL, *book.CoverURL)
	}
	if book.Year != nil {
		validator.Range(FieldYear, *book.Year, 1800, time.Now().Year())
	}

	return validator.Err()
}
