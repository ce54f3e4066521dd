package subscriber

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/platform/dberr"
)

type fakeRepository struct {
	byEmail map[string]*Subscriber
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: map[string]*Subscriber{}}
}

func (repo *fakeRepository) ListSubscribers(_ context.Context, _ bool, _, _ int) ([]*Subscriber, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) FindByEmail(_ context.Context, email string) (*Subscriber, error) {
	if s, ok := repo.byEmail[email]; ok {
		return s, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) CreateSubscriber(_ context.Context, s *Subscriber) error {
	repo.byEmail[s.Email] = s
	return nil
}

func (repo *fakeRepository) SetActive(_ context.Context, email string, active bool) error {
	s, ok := repo.byEmail[email]
	if !ok {
		return dberr.ErrNotFound
	}
	s.IsActive = active
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestSubscribe_NormalizesAndStores(t *testing.T) {
	service, repo := newTestService()

	sub, err := service.Subscribe(context.Background(), "  Reader@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", sub.Email)
	assert.True(t, sub.IsActive)
	assert.Contains(t, repo.byEmail, "reader@example.com")
}

func TestSubscribe_DuplicateActiveConflicts(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	_, err = service.Subscribe(context.Background(), "reader@example.com")
	require.Error(t, err)
}

func TestSubscribe_ReactivatesUnsubscribed(t *testing.T) {
	service, repo := newTestService()

	first, err := service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NoError(t, service.Unsubscribe(context.Background(), "reader@example.com"))
	assert.False(t, repo.byEmail["reader@example.com"].IsActive)

	again, err := service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.True(t, again.IsActive)
	assert.Equal(t, first.ID, again.ID, "resubscribing keeps the original record")
}

func TestSubscribe_RejectsInvalidEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Subscribe(context.Background(), "not-an-address")
	require.Error(t, err)
}

func TestUnsubscribe_UnknownAddressIsSilent(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.Unsubscribe(context.Background(), "nobody@example.com"))
}
