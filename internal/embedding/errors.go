package embedding

import "errors"

var (
	ErrEmptyTexts          = errors.New("embedding: empty texts")
	ErrMismatchVectorCount = errors.New("embedding: mismatch vector count")
	ErrInferenceFailed     = errors.New("embedding: inference failed")
)
