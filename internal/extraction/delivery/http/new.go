package http

import (
	"sidecar-srv/internal/extraction"
	"sidecar-srv/internal/middleware"
	"sidecar-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for entity extraction HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New - Factory
func New(l log.Logger, uc extraction.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
