package httpserver

import (
	"context"

	convHTTP "whatsapp-bridge/internal/conversation/delivery/http"
	"whatsapp-bridge/internal/conversation/delivery/whatsapp"
	"whatsapp-bridge/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the webhook and the conversation debug routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.whatsappHandler != nil {
		whatsapp.RegisterRoutes(srv.gin.Group("/webhook"), srv.whatsappHandler,
			srv.middleware.TwilioSignature(),
			srv.middleware.SenderRateLimit(),
		)
		srv.l.Infof(ctx, "WhatsApp webhook route registered at POST /webhook/whatsapp")
	} else {
		srv.l.Infof(ctx, "WhatsApp handler not configured, skipping webhook route")
	}

	convHTTP.RegisterRoutes(srv.gin.Group("/conversation"), srv.debugHandler)
	srv.l.Infof(ctx, "Conversation routes registered under /conversation")
}
