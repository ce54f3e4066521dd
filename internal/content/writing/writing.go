package writing

import "time"

// Kind classifies a writing in the poet's body of work.
type Kind string

const (
	KindPoem  Kind = "poem"
	KindSong  Kind = "song"
	KindEssay Kind = "essay"
)

// Valid reports whether the kind is one of the known writing kinds.
func (kind Kind) Valid() bool {
	switch kind {
	case KindPoem, KindSong, KindEssay:
		return true
	}
	return false
}

// Writing represents a poem, song or essay in the memorial archive.
//
// Slug carries the Bengali-script form of the title; SlugLatin the phonetic
// transliteration. Either resolves the writing in public URLs.
type Writing struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	SlugLatin   string     `json:"slug_latin"`
	Body        string     `json:"body"`
	Year        *int       `json:"year"`
	Collection  *string    `json:"collection"` // Originating anthology, if any
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated writing search.
type Filter struct {
	Query         string // Substring search against title
	Kind          Kind   // Empty means all kinds
	PublishedOnly bool   // Public listings never see unpublished drafts
}

// Global field names for validation
const (
	FieldKind       = "kind"
	FieldTitle      = "title"
	FieldBody       = "body"
	FieldYear       = "year"
	FieldCollection = "collection"
)
