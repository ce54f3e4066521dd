package subscriber

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/dberr"
	"github.com/rafidhsn/smriti/internal/platform/validate"
	"github.com/rafidhsn/smriti/pkg/uuid"
)

// MsgAlreadySubscribed is returned when the address is already on the list.
const MsgAlreadySubscribed = "এই ইমেইল ঠিকানাটি ইতিমধ্যে নিবন্ধিত আছে"

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

func (service *Service) ListSubscribers(context context.Context, activeOnly bool, limit, offset int) ([]*Subscriber, int, error) {
	return service.repo.ListSubscribers(context, activeOnly, limit, offset)
}

// Subscribe adds an email address to the news list. A previously
// unsubscribed address is reactivated rather than duplicated.
func (service *Service) Subscribe(context context.Context, email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.FindByEmail(context, email)
	if err == nil {
		if existing.IsActive {
			return nil, apperr.Conflict(MsgAlreadySubscribed)
		}
		if err := service.repo.SetActive(context, email, true); err != nil {
			return nil, err
		}
		existing.IsActive = true

		service.logger.Info("subscriber_reactivated", slog.String("subscriber_id", existing.ID))
		return existing, nil
	}

	s := &Subscriber{
		ID:       uuid.New(),
		Email:    email,
		IsActive: true,
	}
	if err := service.repo.CreateSubscriber(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("subscriber_created", slog.String("subscriber_id", s.ID))
	return s, nil
}

// Unsubscribe deactivates an address. Unknown addresses are ignored so the
// one-click link in outgoing mail never errors.
func (service *Service) Unsubscribe(context context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return apperr.ValidationError("Email is required")
	}

	if err := service.repo.SetActive(context, email, false); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil
		}
		return err
	}

	service.logger.Info("subscriber_deactivated", slog.String("email", email))
	return nil
}
