package tribute

import "context"

type Repository interface {
	ListTributes(context context.Context, f Filter, limit, offset int) ([]*Tribute, int, error)
	CreateTribute(context context.Context, t *Tribute) error
	UpdateStatus(context context.Context, id string, status string) error
	DeleteTribute(context context.Context, id string) error
}
