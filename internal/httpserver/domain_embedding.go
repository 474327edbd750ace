package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	embeddingHTTP "sidecar-srv/internal/embedding/delivery/http"
	embeddingUsecase "sidecar-srv/internal/embedding/usecase"
	"sidecar-srv/internal/middleware"
)

func (srv HTTPServer) setupEmbeddingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := embeddingUsecase.New(srv.embedder, srv.l)

	handler := embeddingHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Embedding domain registered (dimension=%d)", srv.embedder.Dim())
	return nil
}
