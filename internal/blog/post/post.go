package post

import (
	"time"

	"github.com/rafidhsn/smriti/internal/content/moderation"
)

// Post represents a blog entry about the poet's life and work.
//
// Any signed-in member may write one; non-administrator posts enter the
// moderation queue as PENDING before publication.
type Post struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	SlugLatin string            `json:"slug_latin"`
	Content   string            `json:"content"`
	Status    moderation.Status `json:"status"`
	AuthorID  string            `json:"author_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt *time.Time        `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated post listing.
type Filter struct {
	Status   moderation.Status // Empty means all statuses (administrative listings)
	AuthorID string            // Restrict to a single author
	Query    string            // Substring search against title
}

// Minimum content lengths, counted in runes so Bengali text is measured
// fairly.
const (
	MinTitleLen   = 5
	MinContentLen = 50
)

// Global field names for validation
const (
	FieldTitle   = "title"
	FieldContent = "content"
)
