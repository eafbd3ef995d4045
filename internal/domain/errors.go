package domain

import "errors"

var (
	// ErrAuthenticationRequired is returned by operations that need an active session user.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrInvalidStatus is returned when a status string is outside its enumerated set.
	ErrInvalidStatus = errors.New("invalid status")
)
