package usecase

import (
	"context"
	"errors"
	"fmt"

	"sidecar-srv/internal/rerank"
)

func (uc *implUseCase) Rerank(ctx context.Context, input rerank.RerankInput) (rerank.RerankOutput, error) {
	if input.Query == "" {
		uc.l.Errorf(ctx, "rerank.usecase.Rerank: empty query")
		return rerank.RerankOutput{}, rerank.ErrEmptyQuery
	}

	// An empty document list yields an empty score list, not an error. The
	// HTTP surface rejects it earlier; this keeps the wrapper contract safe
	// for in-process callers.
	if len(input.Documents) == 0 {
		return rerank.RerankOutput{Scores: []float32{}}, nil
	}

	scores, err := uc.scorer.ScoreBatch(input.Query, input.Documents)
	if err != nil {
		uc.l.Errorf(ctx, "rerank.usecase.Rerank: score failed: %v", err)
		return rerank.RerankOutput{}, errors.Join(rerank.ErrInferenceFailed, err)
	}
	if len(scores) != len(input.Documents) {
		uc.l.Errorf(ctx, "rerank.usecase.Rerank: expected %d scores, got %d", len(input.Documents), len(scores))
		return rerank.RerankOutput{}, fmt.Errorf("%w: expected %d, got %d",
			rerank.ErrMismatchScoreCount, len(input.Documents), len(scores))
	}

	return rerank.RerankOutput{Scores: scores}, nil
}
