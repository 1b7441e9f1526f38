package conversation

import (
	"context"

	"whatsapp-bridge/internal/model"
	"whatsapp-bridge/internal/session"
	"whatsapp-bridge/pkg/agentbackend"
)

// UseCase runs one conversational turn per inbound message.
type UseCase interface {
	// HandleMessage ingests attached images, updates the draft, answers the
	// message and records the turn in the sender's session.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)
	// History returns the sender's session without creating or touching it.
	History(ctx context.Context, identity string) (session.Session, bool)
	// Clear drops the sender's session.
	Clear(ctx context.Context, identity string) bool
	// ActiveConversations returns the number of resident sessions.
	ActiveConversations() int
}

// AgentBackend is the conversational agent the turn is delegated to.
type AgentBackend interface {
	Run(ctx context.Context, req agentbackend.RunRequest) (agentbackend.RunResponse, error)
}
