package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique sign-in identifier. The access gate consumes only
	// this field when deciding whether the identity is elevated.
	Email string `json:"email"`

	// Name is the display name of the user. It is non-sensitive, may be shown
	// in UI, and is copied into each journal record at write time.
	Name string `json:"name"`

	// Password carries the plain-text password on register/login requests
	// only. It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id-encoded credential stored at the
	// persistence layer. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
