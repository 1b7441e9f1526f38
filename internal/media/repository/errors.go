package repository

import "errors"

var (
	ErrObjectExists  = errors.New("object already exists")
	ErrMissingConfig = errors.New("storage not configured")
)
