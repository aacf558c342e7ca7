package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrStaleResponse is returned by ListRecords when a newer fetch started
	// before this one resolved. The response payload must be discarded.
	ErrStaleResponse = errors.New("stale list response")
)
