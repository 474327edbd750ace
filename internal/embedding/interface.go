package embedding

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Embed(ctx context.Context, input EmbedInput) (EmbedOutput, error)
}

// Encoder is the model wrapper the usecase runs inference against.
// *pkgml.Embedder satisfies it; tests substitute fakes.
type Encoder interface {
	EncodeBatch(texts []string) ([][]float32, error)
	Dim() int
}
