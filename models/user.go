package models

import "time"

// User represents a family member account. Accounts are seeded out of band;
// the application never creates or deletes them. The PIN is the only
// credential and is mutated exclusively by the PIN-reset flow.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the unique display name used to select the account at login
	// and to attribute wishlist items in family views.
	Name string `json:"name"`

	// Email is the address notification digests and PIN-reset mail are
	// delivered to.
	Email string `json:"email,omitempty"`

	// PIN is the login credential. It is never exposed via JSON and is
	// compared verbatim against the value entered at login.
	PIN string `json:"-"`

	// CreatedAt is the timestamp when the account row was seeded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
