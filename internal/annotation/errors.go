package annotation

import "errors"

var (
	// ErrCapacity is returned by Merge when a draft would exceed its image limit.
	ErrCapacity = errors.New("draft image limit reached")

	errParse = errors.New("malformed media annotation")
)
