package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidecar-srv/internal/extraction"
	"sidecar-srv/pkg/log"
	"sidecar-srv/pkg/ml"
)

type fakeTagger struct {
	spans map[string][]ml.Span
	err   error
	calls []string
}

func (f *fakeTagger) Tag(text string) ([]ml.Span, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.spans[text], nil
}

func TestExtract_EmptyChunks(t *testing.T) {
	uc := New(&fakeTagger{}, log.NewNop())

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{})
	assert.ErrorIs(t, err, extraction.ErrEmptyChunks)
}

func TestExtract_TaggerError(t *testing.T) {
	cause := errors.New("model crashed")
	uc := New(&fakeTagger{err: cause}, log.NewNop())

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{"some text"}})
	assert.ErrorIs(t, err, extraction.ErrInferenceFailed)
	assert.ErrorIs(t, err, cause)
}

func TestExtract_CleansSubwordPrefixes(t *testing.T) {
	tagger := &fakeTagger{spans: map[string][]ml.Span{
		"Angela Merkel visited Paris": {
			{Text: "Angela", Label: "PER", Score: 0.998},
			{Text: "##Merkel", Label: "PER", Score: 0.991},
			{Text: "  Paris ", Label: "LOC", Score: 0.987},
		},
	}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{
		Chunks: []string{"Angela Merkel visited Paris"},
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	entities := out.Results[0].Entities
	require.Len(t, entities, 3)
	assert.Equal(t, "Merkel", entities[1].Text)
	assert.Equal(t, "Paris", entities[2].Text)
	assert.Equal(t, 3, out.TotalEntities)
}

func TestExtract_DropsShortEntities(t *testing.T) {
	tagger := &fakeTagger{spans: map[string][]ml.Span{
		"chunk": {
			{Text: "A", Label: "ORG", Score: 0.9},
			{Text: "##s", Label: "ORG", Score: 0.9},
			{Text: "  ", Label: "ORG", Score: 0.9},
			{Text: "IBM", Label: "ORG", Score: 0.95},
		},
	}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{"chunk"}})
	require.NoError(t, err)
	require.Len(t, out.Results[0].Entities, 1)
	assert.Equal(t, "IBM", out.Results[0].Entities[0].Text)
}

func TestExtract_DedupesCaseInsensitivelyKeepingFirst(t *testing.T) {
	tagger := &fakeTagger{spans: map[string][]ml.Span{
		"chunk": {
			{Text: "Paris", Label: "LOC", Score: 0.99},
			{Text: "paris", Label: "LOC", Score: 0.42},
			{Text: "PARIS", Label: "LOC", Score: 0.77},
			{Text: "Paris", Label: "ORG", Score: 0.5},
		},
	}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{"chunk"}})
	require.NoError(t, err)

	// Same text under a different label is a distinct entity.
	entities := out.Results[0].Entities
	require.Len(t, entities, 2)
	assert.Equal(t, "Paris", entities[0].Text)
	assert.Equal(t, "LOC", entities[0].Label)
	assert.InDelta(t, 0.99, entities[0].Score, 1e-9)
	assert.Equal(t, "ORG", entities[1].Label)
}

func TestExtract_RoundsScoresToFourDecimals(t *testing.T) {
	tagger := &fakeTagger{spans: map[string][]ml.Span{
		"chunk": {
			{Text: "Berlin", Label: "LOC", Score: 0.987654},
		},
	}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{"chunk"}})
	require.NoError(t, err)
	assert.Equal(t, 0.9877, out.Results[0].Entities[0].Score)
}

func TestExtract_TruncatesLongChunks(t *testing.T) {
	long := strings.Repeat("a", extraction.MaxChunkLength+500)
	tagger := &fakeTagger{spans: map[string][]ml.Span{}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{long}})
	require.NoError(t, err)

	require.Len(t, tagger.calls, 1)
	assert.Len(t, tagger.calls[0], extraction.MaxChunkLength)
	assert.Equal(t, tagger.calls[0], out.Results[0].Text)
}

func TestExtract_TruncateDoesNotSplitRunes(t *testing.T) {
	// Multi-byte runes make byte length exceed the limit while the rune
	// count stays under it; the chunk must pass through untouched.
	short := strings.Repeat("é", extraction.MaxChunkLength-1)
	tagger := &fakeTagger{spans: map[string][]ml.Span{}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{short}})
	require.NoError(t, err)
	assert.Equal(t, short, out.Results[0].Text)

	long := strings.Repeat("é", extraction.MaxChunkLength+10)
	out, err = uc.Extract(context.Background(), extraction.ExtractInput{Chunks: []string{long}})
	require.NoError(t, err)
	assert.Equal(t, extraction.MaxChunkLength, len([]rune(out.Results[0].Text)))
}

func TestExtract_PreservesChunkOrderAndCountsTotal(t *testing.T) {
	tagger := &fakeTagger{spans: map[string][]ml.Span{
		"first":  {{Text: "Alice", Label: "PER", Score: 0.9}},
		"second": {},
		"third": {
			{Text: "Bob", Label: "PER", Score: 0.8},
			{Text: "NASA", Label: "ORG", Score: 0.7},
		},
	}}
	uc := New(tagger, log.NewNop())

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{
		Chunks: []string{"first", "second", "third"},
	})
	require.NoError(t, err)

	require.Len(t, out.Results, 3)
	assert.Equal(t, "first", out.Results[0].Text)
	assert.Equal(t, "second", out.Results[1].Text)
	assert.Equal(t, "third", out.Results[2].Text)
	assert.Empty(t, out.Results[1].Entities)
	assert.Equal(t, 3, out.TotalEntities)
}
