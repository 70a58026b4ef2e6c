package object

import "errors"

var (
	// ErrBucketNotFound is returned when the containing bucket is missing.
	ErrBucketNotFound = errors.New("bucket does not exist")
	// ErrNotFound is returned when the object itself is missing.
	ErrNotFound = errors.New("object does not exist")
	// ErrTooLarge is returned when an object exceeds the download size guard.
	ErrTooLarge = errors.New("object exceeds maximum download size")
)
