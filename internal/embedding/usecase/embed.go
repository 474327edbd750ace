package usecase

import (
	"context"
	"errors"
	"fmt"

	"sidecar-srv/internal/embedding"
)

func (uc *implUseCase) Embed(ctx context.Context, input embedding.EmbedInput) (embedding.EmbedOutput, error) {
	if len(input.Texts) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Embed: empty texts")
		return embedding.EmbedOutput{}, embedding.ErrEmptyTexts
	}

	vectors, err := uc.encoder.EncodeBatch(input.Texts)
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.Embed: encode failed: %v", err)
		return embedding.EmbedOutput{}, errors.Join(embedding.ErrInferenceFailed, err)
	}
	if len(vectors) != len(input.Texts) {
		uc.l.Errorf(ctx, "embedding.usecase.Embed: expected %d vectors, got %d", len(input.Texts), len(vectors))
		return embedding.EmbedOutput{}, fmt.Errorf("%w: expected %d, got %d",
			embedding.ErrMismatchVectorCount, len(input.Texts), len(vectors))
	}

	return embedding.EmbedOutput{
		Vectors:   vectors,
		Dimension: uc.encoder.Dim(),
	}, nil
}
