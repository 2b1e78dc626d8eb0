package service

import "errors"

// Common service errors
var (
	// ErrTireNotFound is returned when no record exists for the given id
	ErrTireNotFound = errors.New("tire record not found")

	// ErrUnsupportedImageType is returned when an upload is not an image
	ErrUnsupportedImageType = errors.New("unsupported image type")
)
