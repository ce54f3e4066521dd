package tribute

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/content/moderation"
	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/pkg/pointer"
)

type fakeRepository struct {
	byID map[string]*Tribute
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Tribute{}}
}

func (repo *fakeRepository) ListTributes(_ context.Context, _ Filter, _, _ int) ([]*Tribute, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) CreateTribute(_ context.Context, t *Tribute) error {
	repo.byID[t.ID] = t
	return nil
}

func (repo *fakeRepository) UpdateStatus(_ context.Context, id string, status string) error {
	t, ok := repo.byID[id]
	if !ok {
		return apperr.NotFound("Tribute")
	}
	t.Status = moderation.Status(status)
	return nil
}

func (repo *fakeRepository) DeleteTribute(_ context.Context, id string) error {
	if _, ok := repo.byID[id]; !ok {
		return apperr.NotFound("Tribute")
	}
	delete(repo.byID, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestSubmitTribute_VisitorStartsPending(t *testing.T) {
	service, _ := newTestService()

	tr := &Tribute{
		AuthorName: "অনামিকা",
		Body:       "তাঁর কবিতা আমার জীবন বদলে দিয়েছে",
		Status:     moderation.StatusApproved, // Client tries to self-approve.
	}
	require.NoError(t, service.SubmitTribute(context.Background(), tr, nil, false))

	assert.Equal(t, moderation.StatusPending, tr.Status)
	assert.Nil(t, tr.AuthorID)
	assert.NotEmpty(t, tr.ID)
}

func TestSubmitTribute_MemberIsLinked(t *testing.T) {
	service, _ := newTestService()

	tr := &Tribute{
		AuthorName: "রাহুল",
		Body:       "অসাধারণ একজন কবি ছিলেন তিনি",
	}
	require.NoError(t, service.SubmitTribute(context.Background(), tr, pointer.To("member-1"), false))

	require.NotNil(t, tr.AuthorID)
	assert.Equal(t, "member-1", *tr.AuthorID)
	assert.Equal(t, moderation.StatusPending, tr.Status)
}

func TestSubmitTribute_AdministratorKeepsStatus(t *testing.T) {
	service, _ := newTestService()

	tr := &Tribute{
		AuthorName: "সম্পাদক",
		Body:       "স্মরণসভা থেকে সংগৃহীত শ্রদ্ধাঞ্জলি",
	}
	require.NoError(t, service.SubmitTribute(context.Background(), tr, pointer.To("admin-1"), true))

	assert.Equal(t, moderation.StatusApproved, tr.Status)
}

func TestSubmitTribute_SpamRejected(t *testing.T) {
	service, repo := newTestService()

	tr := &Tribute{
		AuthorName: "বিজ্ঞাপনদাতা",
		Body:       "শ্রদ্ধা জানাই, দেখুন https://spam.example.com",
	}
	err := service.SubmitTribute(context.Background(), tr, nil, false)
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, MsgContactInfoRejected, appError.Message)
	assert.Empty(t, repo.byID)
}

func TestModerate_RejectsUnknownStatus(t *testing.T) {
	service, repo := newTestService()

	tr := &Tribute{AuthorName: "অনামিকা", Body: "তাঁর গান আজও মনে বাজে"}
	require.NoError(t, service.SubmitTribute(context.Background(), tr, nil, false))

	require.Error(t, service.Moderate(context.Background(), tr.ID, "SHIPPED"))
	assert.Equal(t, moderation.StatusPending, repo.byID[tr.ID].Status)

	require.NoError(t, service.Moderate(context.Background(), tr.ID, moderation.StatusApproved))
	assert.Equal(t, moderation.StatusApproved, repo.byID[tr.ID].Status)
}
