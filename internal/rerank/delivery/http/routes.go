package http

import (
	"sidecar-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/rerank", mw.ServiceAuth(), h.Rerank)
}
