package rerank

import "errors"

var (
	ErrEmptyQuery         = errors.New("rerank: empty query")
	ErrMismatchScoreCount = errors.New("rerank: mismatch score count")
	ErrInferenceFailed    = errors.New("rerank: inference failed")
)
