package task

import "errors"

var (
	// ErrTaskNotFound covers both "does not exist" and "exists but is
	// owned by someone else", so responses never leak existence.
	ErrTaskNotFound = errors.New("task not found")

	ErrImageNotFound = errors.New("image file not found")
)
