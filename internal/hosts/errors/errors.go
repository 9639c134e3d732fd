package errors

import "errors"

var (
	ErrNotFound = errors.New("host profile not found")

	ErrInvalidID = errors.New("invalid host ID format")

	ErrAlreadyExists = errors.New("host profile already exists for this user")
)
