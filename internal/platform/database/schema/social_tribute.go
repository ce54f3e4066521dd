package schema

// SocialTributeTable represents the 'social.tribute' table
type SocialTributeTable struct {
	Table      string
	ID         string
	AuthorName string
	AuthorID   string
	Body       string
	Status     string
	CreatedAt  string
	UpdatedAt  string
	DeletedAt  string
}

// SocialTribute is the schema definition for social.tribute
var SocialTribute = SocialTributeTable{
	Table:      "social.tribute",
	ID:         "id",
	AuthorName: "authorname",
	AuthorID:   "authorid",
	Body:       "body",
	Status:     "status",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
	DeletedAt:  "deletedat",
}
