package conversation

import "errors"

var (
	ErrEmptyMessage = errors.New("message has neither text nor media")
	ErrNoIdentity   = errors.New("message has no sender identity")
)
