package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	WritingID string
	PostID    string
	AuthorID  string
	Body      string
	CreatedAt string
	DeletedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	WritingID: "writingid",
	PostID:    "postid",
	AuthorID:  "authorid",
	Body:      "body",
	CreatedAt: "createdat",
	DeletedAt: "deletedat",
}
