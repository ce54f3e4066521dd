package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table             string
	ID                string
	Username          string
	Email             string
	Password          string
	Name              string
	Image             string
	Bio               string
	Role              string
	IsDeleted         string
	IsVerified        string
	NotifyOnComment   string
	NotifyOnNews      string
	UsernameChangedAt string
	CreatedAt         string
	UpdatedAt         string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:             "users.account",
	ID:                "id",
	Username:          "username",
	Email:             "email",
	Password:          "passwordhash",
	Name:              "name",
	Image:             "image",
	Bio:               "bio",
	Role:              "role",
	IsDeleted:         "isdeleted",
	IsVerified:        "isverified",
	NotifyOnComment:   "notifyoncomment",
	NotifyOnNews:      "notifyonnews",
	UsernameChangedAt: "usernamechangedat",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}
