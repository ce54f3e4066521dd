package writing

import "context"

type Repository interface {
	ListWritings(context context.Context, f Filter, limit, offset int) ([]*Writing, int, error)
	GetWriting(context context.Context, id string) (*Writing, error)
	GetWritingBySlug(context context.Context, slug string) (*Writing, error)
	CreateWriting(context context.Context, w *Writing) error
	UpdateWriting(context context.Context, w *Writing) error
	DeleteWriting(context context.Context, id string) error
	SlugExists(context context.Context, slug string) (bool, error)
}
