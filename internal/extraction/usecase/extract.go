package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"sidecar-srv/internal/extraction"
	"sidecar-srv/pkg/ml"
)

func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if len(input.Chunks) == 0 {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: empty chunks")
		return extraction.ExtractOutput{}, extraction.ErrEmptyChunks
	}

	output := extraction.ExtractOutput{
		Results: make([]extraction.ChunkResult, 0, len(input.Chunks)),
	}

	for _, chunk := range input.Chunks {
		truncated := truncate(chunk, extraction.MaxChunkLength)

		spans, err := uc.tagger.Tag(truncated)
		if err != nil {
			uc.l.Errorf(ctx, "extraction.usecase.Extract: tag failed: %v", err)
			return extraction.ExtractOutput{}, errors.Join(extraction.ErrInferenceFailed, err)
		}

		entities := cleanSpans(spans)
		output.TotalEntities += len(entities)
		output.Results = append(output.Results, extraction.ChunkResult{
			Text:     truncated,
			Entities: entities,
		})
	}

	return output, nil
}

// cleanSpans normalizes raw model spans into presentable entities: sub-word
// continuation markers are stripped, short leftovers dropped, and duplicates
// collapsed by (lower-cased text, label) keeping the first occurrence.
func cleanSpans(spans []ml.Span) []extraction.Entity {
	entities := make([]extraction.Entity, 0, len(spans))
	seen := make(map[string]struct{}, len(spans))

	for _, span := range spans {
		word := strings.TrimSpace(span.Text)
		word = strings.TrimSpace(strings.TrimPrefix(word, "##"))
		if len(word) < extraction.MinEntityLength {
			continue
		}

		key := strings.ToLower(word) + "|" + span.Label
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		entities = append(entities, extraction.Entity{
			Text:  word,
			Label: span.Label,
			Score: roundScore(float64(span.Score)),
		})
	}

	return entities
}

// truncate cuts s to at most max characters, never splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
