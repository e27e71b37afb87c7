package models

import "time"

// User is a row of the users backend as returned by GET /api/user/{id}.
// It carries only profile attributes; no credential material is stored in
// or returned from this model.
type User struct {
	// ID is the numeric primary key.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the user record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
