package comment

import "context"

type Repository interface {
	ListByWriting(context context.Context, writingID string, limit, offset int) ([]*Comment, int, error)
	ListByPost(context context.Context, postID string, limit, offset int) ([]*Comment, int, error)
	GetComment(context context.Context, id string) (*Comment, error)
	CreateComment(context context.Context, c *Comment) error
	DeleteComment(context context.Context, id string) error
}
