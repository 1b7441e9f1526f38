package usecase

import (
	"context"

	"whatsapp-bridge/internal/session"
)

func (uc *implUseCase) History(ctx context.Context, identity string) (session.Session, bool) {
	return uc.sessions.Peek(identity)
}

// Clear does not take the turn lock. A turn in flight keeps its entry and
// finds it emptied.
func (uc *implUseCase) Clear(ctx context.Context, identity string) bool {
	cleared := uc.sessions.Clear(identity)
	if cleared {
		uc.l.Infof(ctx, "internal.conversation.usecase.Clear: cleared session for %s", identity)
	}
	return cleared
}

func (uc *implUseCase) ActiveConversations() int {
	return uc.sessions.Len()
}
