package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sidecar-srv/internal/middleware"
	rerankHTTP "sidecar-srv/internal/rerank/delivery/http"
	rerankUsecase "sidecar-srv/internal/rerank/usecase"
)

func (srv HTTPServer) setupRerankDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := rerankUsecase.New(srv.crossEncoder, srv.l)

	handler := rerankHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Rerank domain registered")
	return nil
}
