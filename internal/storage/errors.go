package storage

import "errors"

// ErrUserNotFound is returned when no record matches the identifier.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when the email collides with an existing record.
var ErrEmailTaken = errors.New("email already registered")
