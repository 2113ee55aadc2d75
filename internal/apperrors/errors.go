// Package apperrors defines sentinel errors shared across the service
// layers. Callers should use errors.Is to match these values; the handler
// layer maps them to HTTP status codes.
package apperrors

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")

	// Input validation errors.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
)
