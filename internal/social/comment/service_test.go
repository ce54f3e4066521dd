package comment

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/pkg/pointer"
)

type fakeRepository struct {
	byID map[string]*Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Comment{}}
}

func (repo *fakeRepository) ListByWriting(_ context.Context, _ string, _, _ int) ([]*Comment, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) ListByPost(_ context.Context, _ string, _, _ int) ([]*Comment, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) GetComment(_ context.Context, id string) (*Comment, error) {
	if c, ok := repo.byID[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (repo *fakeRepository) CreateComment(_ context.Context, c *Comment) error {
	repo.byID[c.ID] = c
	return nil
}

func (repo *fakeRepository) DeleteComment(_ context.Context, id string) error {
	delete(repo.byID, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestCreateComment_ExactlyOneParent(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		name      string
		writingID *string
		postID    *string
		wantErr   bool
	}{
		{"writing parent only", pointer.To("w1"), nil, false},
		{"post parent only", nil, pointer.To("p1"), false},
		{"both parents", pointer.To("w1"), pointer.To("p1"), true},
		{"no parent", nil, nil, true},
		{"empty strings count as absent", pointer.To(""), pointer.To(""), true},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			c := &Comment{
				WritingID: testCase.writingID,
				PostID:    testCase.postID,
				Body:      "চমৎকার কবিতা",
			}
			err := service.CreateComment(context.Background(), c, "reader-1")
			if testCase.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "reader-1", c.AuthorID)
			}
		})
	}
}

func TestCreateComment_MinimumLength(t *testing.T) {
	service, _ := newTestService()

	short := &Comment{WritingID: pointer.To("w1"), Body: "ভা"}
	require.Error(t, service.CreateComment(context.Background(), short, "r"))

	// Three Bengali runes pass even though they are nine bytes.
	exact := &Comment{WritingID: pointer.To("w1"), Body: "ভাল"}
	require.NoError(t, service.CreateComment(context.Background(), exact, "r"))
}

func TestCreateComment_SpamRejectedWithLocalizedMessage(t *testing.T) {
	service, repo := newTestService()

	spammy := []string{
		"দেখুন https://example.com",
		"visit www.cheapstuff.net now",
		"আমার ইমেইল someone@mail.com",
		"call 192.168.1.1",
		"join bit.ly promo",
	}

	for _, body := range spammy {
		c := &Comment{WritingID: pointer.To("w1"), Body: body}
		err := service.CreateComment(context.Background(), c, "spammer")
		require.Error(t, err, "body %q must be rejected", body)

		var appError *apperr.AppError
		require.True(t, errors.As(err, &appError))
		assert.Equal(t, MsgContactInfoRejected, appError.Message)
	}

	// Nothing was persisted.
	assert.Empty(t, repo.byID)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	service, repo := newTestService()

	c := &Comment{WritingID: pointer.To("w1"), Body: "চমৎকার কবিতা"}
	require.NoError(t, service.CreateComment(context.Background(), c, "author-1"))

	// A stranger cannot delete it, even when signed in.
	err := service.DeleteComment(context.Background(), c.ID, "stranger", false)
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, 403, appError.HTTPStatus)
	assert.Contains(t, repo.byID, c.ID, "rejected delete must not mutate")

	// The author can.
	require.NoError(t, service.DeleteComment(context.Background(), c.ID, "author-1", false))
	assert.Empty(t, repo.byID)
}

func TestDeleteComment_AdministratorMayModerate(t *testing.T) {
	service, repo := newTestService()

	c := &Comment{PostID: pointer.To("p1"), Body: "চমৎকার লেখা"}
	require.NoError(t, service.CreateComment(context.Background(), c, "author-1"))

	require.NoError(t, service.DeleteComment(context.Background(), c.ID, "moderator-1", true))
	assert.Empty(t, repo.byID)
}
