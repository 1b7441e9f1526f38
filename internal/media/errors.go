package media

import "errors"

// Failure classes for a single image. Callers match with errors.Is.
var (
	ErrNetwork     = errors.New("media network error")
	ErrValidation  = errors.New("media validation error")
	ErrCompression = errors.New("media compression error")
)
