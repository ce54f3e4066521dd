package writing

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
)

type fakeRepository struct {
	byID  map[string]*Writing
	slugs map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Writing{}, slugs: map[string]bool{}}
}

func (repo *fakeRepository) ListWritings(_ context.Context, _ Filter, _, _ int) ([]*Writing, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) GetWriting(_ context.Context, id string) (*Writing, error) {
	if w, ok := repo.byID[id]; ok {
		return w, nil
	}
	return nil, apperr.NotFound("Writing")
}

func (repo *fakeRepository) GetWritingBySlug(_ context.Context, slug string) (*Writing, error) {
	for _, w := range repo.byID {
		if w.Slug == slug || w.SlugLatin == slug {
			return w, nil
		}
	}
	return nil, apperr.NotFound("Writing")
}

func (repo *fakeRepository) CreateWriting(_ context.Context, w *Writing) error {
	repo.byID[w.ID] = w
	repo.slugs[w.Slug] = true
	repo.slugs[w.SlugLatin] = true
	return nil
}

func (repo *fakeRepository) UpdateWriting(_ context.Context, w *Writing) error {
	repo.byID[w.ID] = w
	return nil
}

func (repo *fakeRepository) DeleteWriting(_ context.Context, id string) error {
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

func TestCreateWriting_GeneratesBothSlugForms(t *testing.T) {
	service, _ := newTestService()

	w := &Writing{Kind: KindSong, Title: "আমার গান", Body: "গানের কথা"}
	require.NoError(t, service.CreateWriting(context.Background(), w))

	assert.Equal(t, "আমার-গান", w.Slug)
	assert.Equal(t, "amar-gan", w.SlugLatin)
	assert.NotEmpty(t, w.ID)
}

func TestCreateWriting_CollidingTitlesGetSuffixes(t *testing.T) {
	service, _ := newTestService()

	first := &Writing{Kind: KindPoem, Title: "আমার গান", Body: "এক"}
	second := &Writing{Kind: KindPoem, Title: "আমার গান", Body: "দুই"}
	third := &Writing{Kind: KindPoem, Title: "আমার গান", Body: "তিন"}

	require.NoError(t, service.CreateWriting(context.Background(), first))
	require.NoError(t, service.CreateWriting(context.Background(), second))
	require.NoError(t, service.CreateWriting(context.Background(), third))

	assert.Equal(t, "আমার-গান", first.Slug)
	assert.Equal(t, "আমার-গান-1", second.Slug)
	assert.Equal(t, "আমার-গান-2", third.Slug)
}

func TestCreateWriting_PunctuationTitleFallsBack(t *testing.T) {
	service, _ := newTestService()

	w := &Writing{Kind: KindPoem, Title: "!!!", Body: "দেহ"}
	require.NoError(t, service.CreateWriting(context.Background(), w))

	assert.True(t, strings.HasPrefix(w.Slug, "poem-"), "got slug %q", w.Slug)
}

func TestCreateWriting_UnknownKindRejected(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateWriting(context.Background(), &Writing{Kind: "novel", Title: "শিরোনাম", Body: "দেহ"})
	require.Error(t, err)
}

func TestUpdateWriting_SlugsAreStable(t *testing.T) {
	service, repo := newTestService()

	w := &Writing{Kind: KindPoem, Title: "আমার গান", Body: "এক"}
	require.NoError(t, service.CreateWriting(context.Background(), w))
	originalSlug := w.Slug
	originalLatin := w.SlugLatin

	update := &Writing{Kind: KindPoem, Title: "নতুন শিরোনাম", Body: "দুই"}
	require.NoError(t, service.UpdateWriting(context.Background(), w.ID, update))

	stored := repo.byID[w.ID]
	assert.Equal(t, "নতুন শিরোনাম", stored.Title)
	assert.Equal(t, originalSlug, stored.Slug)
	assert.Equal(t, originalLatin, stored.SlugLatin)
}
