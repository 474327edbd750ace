package http

import "sidecar-srv/internal/rerank"

// =====================================================
// Request DTOs
// =====================================================

type rerankReq struct {
	Query     string   `json:"query" binding:"required,min=1"`
	Documents []string `json:"documents" binding:"required,min=1"`
}

func (r rerankReq) toInput() rerank.RerankInput {
	return rerank.RerankInput{
		Query:     r.Query,
		Documents: r.Documents,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type rerankResp struct {
	Scores []float32 `json:"scores"`
	Count  int       `json:"count"`
}

func (h *handler) newRerankResp(output rerank.RerankOutput) rerankResp {
	return rerankResp{
		Scores: output.Scores,
		Count:  len(output.Scores),
	}
}
