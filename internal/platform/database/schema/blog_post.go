package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	SlugLatin string
	Content   string
	Status    string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:     "blog.post",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	SlugLatin: "sluglatin",
	Content:   "content",
	Status:    "status",
	AuthorID:  "authorid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}
