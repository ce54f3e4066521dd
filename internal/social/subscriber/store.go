package subscriber

import "context"

type Repository interface {
	ListSubscribers(context context.Context, activeOnly bool, limit, offset int) ([]*Subscriber, int, error)
	FindByEmail(context context.Context, email string) (*Subscriber, error)
	CreateSubscriber(context context.Context, s *Subscriber) error
	SetActive(context context.Context, email string, active bool) error
}
