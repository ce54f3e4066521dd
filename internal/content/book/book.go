package book

import "time"

// Book represents a published work of the poet (anthology, novel, collection).
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	SlugLatin   string     `json:"slug_latin"`
	Description string     `json:"description"`
	CoverURL    *string    `json:"cover_url"`
	Publisher   *string    `json:"publisher"`
	Year        *int       `json:"year"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated book search.
type Filter struct {
	Query string // Substring search against title
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCoverURL    = "cover_url"
	FieldPublisher   = "publisher"
	FieldYear        = "year"
)
