package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"whatsapp-bridge/internal/conversation"
	convHTTP "whatsapp-bridge/internal/conversation/delivery/http"
	"whatsapp-bridge/internal/conversation/delivery/whatsapp"
	"whatsapp-bridge/internal/middleware"
	"whatsapp-bridge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Conversation domain
	conversationUC  conversation.UseCase
	whatsappHandler whatsapp.Handler
	debugHandler    convHTTP.Handler
	middleware      middleware.Middleware

	// Health details
	twilioConfigured bool
	agentBackendURL  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ConversationUC  conversation.UseCase
	WhatsAppHandler whatsapp.Handler
	Middleware      middleware.Middleware

	TwilioConfigured bool
	AgentBackendURL  string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		conversationUC:   cfg.ConversationUC,
		whatsappHandler:  cfg.WhatsAppHandler,
		middleware:       cfg.Middleware,
		twilioConfigured: cfg.TwilioConfigured,
		agentBackendURL:  cfg.AgentBackendURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.conversationUC != nil {
		srv.debugHandler = convHTTP.New(logger, srv.conversationUC)
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	return nil
}

// Engine exposes the router, mainly for tests.
func (srv HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
