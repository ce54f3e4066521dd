package schema

// ContentWritingTable represents the 'content.writing' table
type ContentWritingTable struct {
	Table       string
	ID          string
	Kind        string
	Title       string
	Slug        string
	SlugLatin   string
	Body        string
	Year        string
	Collection  string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentWriting is the schema definition for content.writing
var ContentWriting = ContentWritingTable{
	Table:       "content.writing",
	ID:          "id",
	Kind:        "kind",
	Title:       "title",
	Slug:        "slug",
	SlugLatin:   "sluglatin",
	Body:        "body",
	Year:        "year",
	Collection:  "collection",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
