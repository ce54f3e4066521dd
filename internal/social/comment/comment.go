package comment

import "time"

// Comment is a reader's response attached to exactly one parent: either a
// writing or a blog post, never both and never neither.
type Comment struct {
	ID        string     `json:"id"`
	WritingID *string    `json:"writing_id"`
	PostID    *string    `json:"post_id"`
	AuthorID  string     `json:"author_id"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"-"` // soft-delete tracker
}

// MinBodyLen is the minimum comment length in runes.
const MinBodyLen = 3

// Localized rejection shown when the spam filter matches contact patterns:
// "Links or contact information are not allowed in comments."
const MsgContactInfoRejected = "মন্তব্যে লিংক বা যোগাযোগের তথ্য দেওয়া যাবে না"

// Global field names for validation
const (
	FieldBody      = "body"
	FieldWritingID = "writing_id"
	FieldPostID    = "post_id"
)
