package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrDatesConflict = errors.New("booking dates conflict with an existing booking")

	ErrInvalidDateRange = errors.New("end date must be after start date")
)
