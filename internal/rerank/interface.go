package rerank

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Rerank(ctx context.Context, input RerankInput) (RerankOutput, error)
}

// Scorer is the cross-encoder wrapper the usecase runs inference against.
// *pkgml.CrossEncoder satisfies it; tests substitute fakes.
type Scorer interface {
	ScoreBatch(query string, documents []string) ([]float32, error)
}
