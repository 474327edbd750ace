package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processExtractEntitiesRequest(c *gin.Context) (extractEntitiesReq, error) {
	var req extractEntitiesReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}
