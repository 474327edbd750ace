package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidecar-srv/internal/rerank"
	"sidecar-srv/pkg/log"
)

type fakeScorer struct {
	scores []float32
	err    error
	called bool
}

func (f *fakeScorer) ScoreBatch(query string, documents []string) ([]float32, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func TestRerank_EmptyQuery(t *testing.T) {
	uc := New(&fakeScorer{}, log.NewNop())

	_, err := uc.Rerank(context.Background(), rerank.RerankInput{Documents: []string{"doc"}})
	assert.ErrorIs(t, err, rerank.ErrEmptyQuery)
}

func TestRerank_EmptyDocumentsSkipsInference(t *testing.T) {
	scorer := &fakeScorer{}
	uc := New(scorer, log.NewNop())

	out, err := uc.Rerank(context.Background(), rerank.RerankInput{Query: "what is go"})
	require.NoError(t, err)
	assert.NotNil(t, out.Scores)
	assert.Empty(t, out.Scores)
	assert.False(t, scorer.called)
}

func TestRerank_ScorerError(t *testing.T) {
	cause := errors.New("session failure")
	uc := New(&fakeScorer{err: cause}, log.NewNop())

	_, err := uc.Rerank(context.Background(), rerank.RerankInput{
		Query:     "query",
		Documents: []string{"doc"},
	})
	assert.ErrorIs(t, err, rerank.ErrInferenceFailed)
	assert.ErrorIs(t, err, cause)
}

func TestRerank_MismatchScoreCount(t *testing.T) {
	uc := New(&fakeScorer{scores: []float32{0.5}}, log.NewNop())

	_, err := uc.Rerank(context.Background(), rerank.RerankInput{
		Query:     "query",
		Documents: []string{"a", "b", "c"},
	})
	assert.ErrorIs(t, err, rerank.ErrMismatchScoreCount)
}

func TestRerank_ReturnsScoresInDocumentOrder(t *testing.T) {
	uc := New(&fakeScorer{scores: []float32{2.5, -1.25, 0.0}}, log.NewNop())

	out, err := uc.Rerank(context.Background(), rerank.RerankInput{
		Query:     "capital of france",
		Documents: []string{"paris", "tokyo", "lyon"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, -1.25, 0.0}, out.Scores)
}
