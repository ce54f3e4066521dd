package post

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/content/moderation"
	"github.com/rafidhsn/smriti/internal/platform/apperr"
)

type fakeRepository struct {
	byID  map[string]*Post
	slugs map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Post{}, slugs: map[string]bool{}}
}

func (repo *fakeRepository) ListPosts(_ context.Context, _ Filter, _, _ int) ([]*Post, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) GetPost(_ context.Context, id string) (*Post, error) {
	if p, ok := repo.byID[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Post")
}

func (repo *fakeRepository) GetPostBySlug(_ context.Context, slug string) (*Post, error) {
	for _, p := range repo.byID {
		if p.Slug == slug || p.SlugLatin == slug {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (repo *fakeRepository) CreatePost(_ context.Context, p *Post) error {
	repo.byID[p.ID] = p
	repo.slugs[p.Slug] = true
	repo.slugs[p.SlugLatin] = true
	return nil
}

func (repo *fakeRepository) UpdatePost(_ context.Context, p *Post) error {
	repo.byID[p.ID] = p
	return nil
}

func (repo *fakeRepository) UpdateStatus(_ context.Context, id string, status string) error {
	if p, ok := repo.byID[id]; ok {
		p.Status = moderation.Status(status)
		return nil
	}
	return apperr.NotFound("Post")
}

func (repo *fakeRepository) DeletePost(_ context.Context, id string) error {
	delete(repo.byID, id)
	return nil
}

func (repo *fakeRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	return repo.slugs[slug], nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func validPost() *Post {
	return &Post{
		Title:   "কবির জীবনের গল্প",
		Content: strings.Repeat("কবির জীবন নিয়ে আলোচনা। ", 5),
	}
}

func TestSubmitPost_NonAdminForcedPending(t *testing.T) {
	service, _ := newTestService()

	p := validPost()
	p.Status = moderation.StatusApproved // Client tries to self-approve.

	require.NoError(t, service.SubmitPost(context.Background(), p, "member-1", false))
	assert.Equal(t, moderation.StatusPending, p.Status)
	assert.Equal(t, "member-1", p.AuthorID)
}

func TestSubmitPost_AdminKeepsStatus(t *testing.T) {
	service, _ := newTestService()

	p := validPost()
	p.Status = moderation.StatusApproved

	require.NoError(t, service.SubmitPost(context.Background(), p, "admin-1", true))
	assert.Equal(t, moderation.StatusApproved, p.Status)
}

func TestSubmitPost_LengthRules(t *testing.T) {
	service, _ := newTestService()

	short := &Post{Title: "কবি", Content: strings.Repeat("ক", MinContentLen)}
	require.Error(t, service.SubmitPost(context.Background(), short, "m", false), "title below 5 runes")

	thin := &Post{Title: "কবির গল্প", Content: "ছোট"}
	require.Error(t, service.SubmitPost(context.Background(), thin, "m", false), "content below 50 runes")

	// Bengali is counted in runes, not bytes: 50 Bengali characters pass
	// even though they are 150 bytes.
	exact := &Post{Title: "কবির গল্প", Content: strings.Repeat("ক", MinContentLen)}
	require.NoError(t, service.SubmitPost(context.Background(), exact, "m", false))
}

func TestUpdatePost_OnlyAuthorOrAdmin(t *testing.T) {
	service, _ := newTestService()

	p := validPost()
	require.NoError(t, service.SubmitPost(context.Background(), p, "author-1", false))

	edit := validPost()
	err := service.UpdatePost(context.Background(), p.ID, "someone-else", false, edit)
	require.Error(t, err)

	err = service.UpdatePost(context.Background(), p.ID, "author-1", false, validPost())
	require.NoError(t, err)

	err = service.UpdatePost(context.Background(), p.ID, "moderator", true, validPost())
	require.NoError(t, err)
}

func TestUpdatePost_NonAdminEditReturnsToPending(t *testing.T) {
	service, repo := newTestService()

	p := validPost()
	require.NoError(t, service.SubmitPost(context.Background(), p, "author-1", false))
	require.NoError(t, service.Moderate(context.Background(), p.ID, moderation.StatusApproved))

	require.NoError(t, service.UpdatePost(context.Background(), p.ID, "author-1", false, validPost()))
	assert.Equal(t, moderation.StatusPending, repo.byID[p.ID].Status)
}

func TestDeletePost_OwnershipRule(t *testing.T) {
	service, repo := newTestService()

	p := validPost()
	require.NoError(t, service.SubmitPost(context.Background(), p, "author-1", false))

	require.Error(t, service.DeletePost(context.Background(), p.ID, "stranger", false))
	require.NoError(t, service.DeletePost(context.Background(), p.ID, "author-1", false))
	assert.Empty(t, repo.byID)
}
