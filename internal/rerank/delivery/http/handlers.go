package http

import (
	"sidecar-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Rerank - Score candidate documents against a query
// @Summary Rerank documents
// @Description Score each candidate document against the query with a cross-encoder; scores are returned in document order, higher is more relevant
// @Tags Inference
// @Accept json
// @Produce json
// @Param body body rerankReq true "Rerank request"
// @Success 200 {object} rerankResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /rerank [post]
func (h *handler) Rerank(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processRerankRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "rerank.delivery.http.Rerank: processRerankRequest failed: %v", err)
		response.ValidationError(c, err)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Rerank(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "rerank.delivery.http.Rerank: usecase Rerank failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.OK(c, h.newRerankResp(output))
}
