package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested post does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyRedirects indicates the redirect hop cap was exceeded
	// while following a redirect chain.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrResponseTooLarge indicates a response exceeded the byte size
	// cap, by declared content length or by actual body size.
	ErrResponseTooLarge = errors.New("response too large")

	// ErrDeployFailed indicates the site deploy command exited with an
	// error.
	ErrDeployFailed = errors.New("deploy failed")
)

// StatusError is a non-2xx final HTTP response.
type StatusError struct {
	// Code is the HTTP status code.
	Code int

	// Status is the status line text, e.g. "404 Not Found".
	Status string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}
