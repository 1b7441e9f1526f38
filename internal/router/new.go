package router

import (
	"context"

	"whatsapp-bridge/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string, cachedResults int) RouterOutput
}

// KeywordRouter detects listing detail requests that can be answered from the
// cached search results without calling the agent backend.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
