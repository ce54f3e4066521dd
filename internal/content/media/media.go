package media

import "time"

// Kind distinguishes recorded media types.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// Valid reports whether the kind is one of the known media kinds.
func (kind Kind) Valid() bool {
	return kind == KindAudio || kind == KindVideo
}

// Media represents a recording: a recitation, a sung rendition, an interview.
type Media struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	SlugLatin   string     `json:"slug_latin"`
	Description string     `json:"description"`
	SourceURL   string     `json:"source_url"` // External host or local file path
	DurationSec *int       `json:"duration_sec"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated media search.
type Filter struct {
	Query string
	Kind  Kind // Empty means all kinds
}

// Global field names for validation
const (
	FieldKind      = "kind"
	FieldTitle     = "title"
	FieldSourceURL = "source_url"
)
