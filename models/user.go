package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user, assigned once
	// at creation and immutable afterwards.
	UserID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login key of the account. Stored and compared
	// exactly as provided (case-sensitive).
	Email string `json:"email"`

	// SecretHash stores the bcrypt hash of the user's secret.
	// This value MUST be a derived value, never plaintext, and is never
	// serialised to JSON.
	SecretHash string `json:"-"`

	// Interests is an optional ordered list of free-text tags the user
	// picked at registration. No uniqueness constraint.
	Interests []string `json:"interests,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public-safe projection of the user: identity, name and
// email only. This is the shape sent over the wire and cached client-side.
func (u User) Info() UserInfo {
	return UserInfo{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// UserInfo is the public projection of a [User]. It never carries the
// secret hash and is safe to return to any caller.
type UserInfo struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
