package services

import "errors"

// Errors the auth workflow hands back to the HTTP boundary. The handlers map
// these to status codes; anything else is treated as an internal fault.
var (
	// ErrEmailTaken is returned when a signup collides with an existing
	// account, whether caught by the pre-check or by the unique constraint.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrInvalidCredentials covers every login failure mode so responses
	// cannot be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by lookups that miss.
	ErrUserNotFound = errors.New("user not found")
)
