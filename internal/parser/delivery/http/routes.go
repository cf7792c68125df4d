package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
}
