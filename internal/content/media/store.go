package media

import "context"

type Repository interface {
	ListMedia(context context.Context, f Filter, limit, offset int) ([]*Media, int, error)
	GetMediaBySlug(context context.Context, slug string) (*Media, error)
	CreateMedia(context context.Context, m *Media) error
	UpdateMedia(context context.Context, m *Media) error
	DeleteMedia(context context.Context, id string) error
	SlugExists(context context.Context, slug string) (bool, error)
}
