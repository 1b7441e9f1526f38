package usecase

import (
	"whatsapp-bridge/internal/annotation"
	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/media"
	"whatsapp-bridge/internal/router"
	"whatsapp-bridge/internal/session"
	pkgLog "whatsapp-bridge/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions session.Store
	media    media.UseCase
	codec    *annotation.Codec
	router   router.Router
	backend  conversation.AgentBackend
}

// New creates a conversation UseCase.
func New(
	l pkgLog.Logger,
	sessions session.Store,
	mediaUC media.UseCase,
	codec *annotation.Codec,
	rt router.Router,
	backend conversation.AgentBackend,
) conversation.UseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		media:    mediaUC,
		codec:    codec,
		router:   rt,
		backend:  backend,
	}
}
