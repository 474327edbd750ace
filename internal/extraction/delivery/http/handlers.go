package http

import (
	"sidecar-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExtractEntities - Extract named entities from text chunks
// @Summary Extract named entities
// @Description Run token-classification over each chunk and return cleaned, de-duplicated entities per chunk in input order; chunks are truncated to 2048 characters before inference
// @Tags Inference
// @Accept json
// @Produce json
// @Param body body extractEntitiesReq true "Extract entities request"
// @Success 200 {object} extractEntitiesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /extract-entities [post]
func (h *handler) ExtractEntities(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processExtractEntitiesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.ExtractEntities: processExtractEntitiesRequest failed: %v", err)
		response.ValidationError(c, err)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.ExtractEntities: usecase Extract failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.OK(c, h.newExtractEntitiesResp(output))
}
