package extraction

import "errors"

var (
	ErrEmptyChunks     = errors.New("extraction: empty chunks")
	ErrInferenceFailed = errors.New("extraction: inference failed")
)
