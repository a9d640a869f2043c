package models

// UserSession is the transient authenticated-identity context.
// Member is a copy of the canonical record and is re-synced explicitly on profile save.
type UserSession struct {
	IsLoggedIn bool    `json:"isLoggedIn"`
	Member     *Member `json:"member,omitempty"`
}
