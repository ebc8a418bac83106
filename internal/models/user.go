// Package models contains the domain structures for business-card user
// records and the request types accepted from JSON bodies.
package models

import "time"

// User is the persisted business-card record. ID is assigned by the
// database and immutable; UID is a server-generated external identifier;
// both timestamps are set by the storage layer.
type User struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Nil fields stay
// untouched; an empty body still refreshes the update timestamp.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
