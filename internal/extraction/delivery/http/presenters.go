package http

import "sidecar-srv/internal/extraction"

// =====================================================
// Request DTOs
// =====================================================

type extractEntitiesReq struct {
	Chunks []string `json:"chunks" binding:"required,min=1"`
}

func (r extractEntitiesReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		Chunks: r.Chunks,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type entityResp struct {
	Text  string  `json:"text"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type chunkEntitiesResp struct {
	Text     string       `json:"text"`
	Entities []entityResp `json:"entities"`
}

type extractEntitiesResp struct {
	Results       []chunkEntitiesResp `json:"results"`
	TotalEntities int                 `json:"total_entities"`
}

func (h *handler) newExtractEntitiesResp(output extraction.ExtractOutput) extractEntitiesResp {
	resp := extractEntitiesResp{
		Results:       make([]chunkEntitiesResp, len(output.Results)),
		TotalEntities: output.TotalEntities,
	}

	for i, r := range output.Results {
		entities := make([]entityResp, len(r.Entities))
		for j, e := range r.Entities {
			entities[j] = entityResp{
				Text:  e.Text,
				Label: e.Label,
				Score: e.Score,
			}
		}
		resp.Results[i] = chunkEntitiesResp{
			Text:     r.Text,
			Entities: entities,
		}
	}

	return resp
}
