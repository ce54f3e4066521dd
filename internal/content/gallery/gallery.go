package gallery

import (
	"time"

	"github.com/rafidhsn/smriti/internal/content/moderation"
)

// Image represents a photograph in the memorial gallery.
//
// Visitors may submit images; those enter the moderation queue as PENDING
// and only appear publicly once approved.
type Image struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Caption     string            `json:"caption"`
	ImageURL    string            `json:"image_url"`
	Status      moderation.Status `json:"status"`
	SubmitterID *string           `json:"submitter_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   *time.Time        `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated gallery listing.
type Filter struct {
	Status moderation.Status // Empty means all statuses (administrative listings)
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldCaption  = "caption"
	FieldImageURL = "image_url"
)
