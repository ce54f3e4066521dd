package schema

// ContentMediaTable represents the 'content.media' table
type ContentMediaTable struct {
	Table       string
	ID          string
	Kind        string
	Title       string
	Slug        string
	SlugLatin   string
	Description string
	SourceURL   string
	DurationSec string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentMedia is the schema definition for content.media
var ContentMedia = ContentMediaTable{
	Table:       "content.media",
	ID:          "id",
	Kind:        "kind",
	Title:       "title",
	Slug:        "slug",
	SlugLatin:   "sluglatin",
	Description: "description",
	SourceURL:   "sourceurl",
	DurationSec: "durationsec",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
