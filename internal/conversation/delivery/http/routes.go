package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the debug endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/clear/:phone", h.Clear)
	rg.GET("/:phone", h.Detail)
}
