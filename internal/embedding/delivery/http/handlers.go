package http

import (
	"sidecar-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Embed - Generate embeddings for a batch of texts
// @Summary Generate embeddings
// @Description Encode the provided texts into normalized embedding vectors, one per text in input order
// @Tags Inference
// @Accept json
// @Produce json
// @Param body body embedReq true "Embed request"
// @Success 200 {object} embedResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /embed [post]
func (h *handler) Embed(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processEmbedRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Embed: processEmbedRequest failed: %v", err)
		response.ValidationError(c, err)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Embed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Embed: usecase Embed failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.OK(c, h.newEmbedResp(output))
}
