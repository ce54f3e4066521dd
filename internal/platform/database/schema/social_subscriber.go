package schema

// SocialSubscriberTable represents the 'social.subscriber' table
type SocialSubscriberTable struct {
	Table     string
	ID        string
	Email     string
	IsActive  string
	CreatedAt string
}

// SocialSubscriber is the schema definition for social.subscriber
var SocialSubscriber = SocialSubscriberTable{
	Table:     "social.subscriber",
	ID:        "id",
	Email:     "email",
	IsActive:  "isactive",
	CreatedAt: "createdat",
}
