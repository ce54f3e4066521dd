package schema

// ContentBookTable represents the 'content.book' table
type ContentBookTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	SlugLatin   string
	Description string
	CoverURL    string
	Publisher   string
	Year        string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentBook is the schema definition for content.book
var ContentBook = ContentBookTable{
	Table:       "content.book",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	SlugLatin:   "sluglatin",
	Description: "description",
	CoverURL:    "coverurl",
	Publisher:   "publisher",
	Year:        "year",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
