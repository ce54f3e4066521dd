package post

import "context"

type Repository interface {
	ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error)
	GetPost(context context.Context, id string) (*Post, error)
	GetPostBySlug(context context.Context, slug string) (*Post, error)
	CreatePost(context context.Context, p *Post) error
	UpdatePost(context context.Context, p *Post) error
	UpdateStatus(context context.Context, id string, status string) error
	DeletePost(context context.Context, id string) error
	SlugExists(context context.Context, slug string) (bool, error)
}
