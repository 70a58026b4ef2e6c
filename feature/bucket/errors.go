package bucket

import "errors"

var (
	// ErrNotFound is returned when the target bucket does not exist.
	ErrNotFound = errors.New("bucket does not exist")
	// ErrAlreadyExists is returned when creating a bucket that exists.
	ErrAlreadyExists = errors.New("bucket already exists")
	// ErrNotEmpty is returned when deleting a non-empty bucket without force.
	ErrNotEmpty = errors.New("bucket is not empty")
	// ErrInvalidName is returned when a bucket name fails validation.
	ErrInvalidName = errors.New("invalid bucket name")
)
