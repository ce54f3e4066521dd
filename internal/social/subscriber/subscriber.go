package subscriber

import "time"

// Subscriber is an email address on the news list. Unsubscribing flips
// IsActive off instead of deleting the row, so re-subscribing restores the
// original record.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

const FieldEmail = "email"
