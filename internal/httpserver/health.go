package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Service identity constants.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "sidecar-srv"
)

// healthCheck reports overall service health. The listener only opens after
// every model is loaded, so answering at all means inference is available.
// @Summary Health Check
// @Description Check if the sidecar is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sidecar is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// readyCheck reports per-model readiness.
// @Summary Readiness Check
// @Description Check if every inference model is loaded and ready
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sidecar is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	models := gin.H{
		"embedder":  srv.embedder != nil,
		"reranker":  srv.crossEncoder != nil,
		"extractor": srv.tagger != nil,
	}

	for _, loaded := range []bool{srv.embedder != nil, srv.crossEncoder != nil, srv.tagger != nil} {
		if !loaded {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"service": ServiceName,
				"models":  models,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"version": HealthVersion,
		"models":  models,
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Description Check if the sidecar process is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sidecar is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"service": ServiceName,
		"version": HealthVersion,
	})
}
