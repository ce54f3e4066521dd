package tribute

import (
	"time"

	"github.com/rafidhsn/smriti/internal/content/moderation"
)

// Tribute is a memorial message left by a visitor or member.
//
// Signed-in members are linked by AuthorID; anonymous visitors leave only a
// display name. All non-administrator tributes start PENDING.
type Tribute struct {
	ID         string            `json:"id"`
	AuthorName string            `json:"author_name"`
	AuthorID   *string           `json:"author_id"`
	Body       string            `json:"body"`
	Status     moderation.Status `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  *time.Time        `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated tribute listing.
type Filter struct {
	Status moderation.Status // Empty means all statuses (administrative listings)
}

// Global field names for validation
const (
	FieldAuthorName = "author_name"
	FieldBody       = "body"
)

// MsgContactInfoRejected is returned when a tribute body carries links or
// contact details.
const MsgContactInfoRejected = "শ্রদ্ধাঞ্জলিতে লিংক বা যোগাযোগের তথ্য দেওয়া যাবে না"
