package http

import (
	"sidecar-srv/internal/middleware"
	"sidecar-srv/internal/rerank"
	"sidecar-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for rerank HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc rerank.UseCase
}

// New - Factory
func New(l log.Logger, uc rerank.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
