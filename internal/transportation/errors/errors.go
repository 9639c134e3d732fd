package errors

import "errors"

var (
	ErrNotFound = errors.New("transportation request not found")

	ErrInvalidID = errors.New("invalid transportation ID format")
)
