package whatsapp

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook under rg. Extra middleware such as the
// Twilio signature check runs before the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	handlers := append(mw, h.HandleWebhook)
	rg.POST("/whatsapp", handlers...)
}
