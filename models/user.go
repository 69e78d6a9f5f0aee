// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role controls which actions a user may perform.
// A user always holds exactly one role.
type Role string

const (
	// RoleAdmin may manage posts and change the role of other users.
	RoleAdmin Role = "admin"

	// RoleEditor may create, edit and delete posts.
	RoleEditor Role = "editor"

	// RoleViewer has read-only access. Every newly registered user starts here.
	RoleViewer Role = "viewer"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleAdmin, RoleEditor, RoleViewer}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	default:
		return false
	}
}

// String returns the role as stored in the database.
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
type User struct {
	// UserID is the identifier assigned by the store on creation.
	UserID int64 `json:"id"`

	// Username is unique and immutable after registration.
	Username string `json:"username"`

	// PasswordHash is the opaque digest produced by the password hasher.
	// It is never exposed via JSON and is only ever compared through Verify.
	PasswordHash string `json:"-"`

	// Role is the single role currently held by the user.
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Registration carries the raw fields of the sign-up form.
type Registration struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// Credentials carries the raw fields of the login form.
type Credentials struct {
	Username string
	Password string
}
