package gallery

import "context"

type Repository interface {
	ListImages(context context.Context, f Filter, limit, offset int) ([]*Image, int, error)
	GetImage(context context.Context, id string) (*Image, error)
	CreateImage(context context.Context, img *Image) error
	UpdateStatus(context context.Context, id string, status string) error
	DeleteImage(context context.Context, id string) error
}
