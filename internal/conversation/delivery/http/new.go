package http

import (
	"github.com/gin-gonic/gin"

	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/pkg/log"
)

// Handler is the public interface for the conversation debug endpoints.
type Handler interface {
	Detail(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
