package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrNoAuthenticatedUser is returned when a record or report operation is
	// invoked without an authenticated identity in the request context.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in context")
)
