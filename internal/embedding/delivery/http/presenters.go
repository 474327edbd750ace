package http

import "sidecar-srv/internal/embedding"

// =====================================================
// Request DTOs
// =====================================================

type embedReq struct {
	Texts []string `json:"texts" binding:"required,min=1"`
}

func (r embedReq) toInput() embedding.EmbedInput {
	return embedding.EmbedInput{
		Texts: r.Texts,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type embedResp struct {
	Embeddings [][]float32 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	Count      int         `json:"count"`
}

func (h *handler) newEmbedResp(output embedding.EmbedOutput) embedResp {
	return embedResp{
		Embeddings: output.Vectors,
		Dimension:  output.Dimension,
		Count:      len(output.Vectors),
	}
}
