package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionHTTP "sidecar-srv/internal/extraction/delivery/http"
	extractionUsecase "sidecar-srv/internal/extraction/usecase"
	"sidecar-srv/internal/middleware"
)

func (srv HTTPServer) setupExtractionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := extractionUsecase.New(srv.tagger, srv.l)

	handler := extractionHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Entity extraction domain registered")
	return nil
}
