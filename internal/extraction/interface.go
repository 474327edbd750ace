package extraction

import (
	"context"

	"sidecar-srv/pkg/ml"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}

// Tagger is the token-classification wrapper the usecase runs inference
// against. *pkgml.Tagger satisfies it; tests substitute fakes.
type Tagger interface {
	Tag(text string) ([]ml.Span, error)
}
