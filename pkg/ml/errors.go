package ml

import "fmt"

// ErrorCode represents error codes returned by the mlrt runtime.
type ErrorCode int32

const (
	ErrOk              ErrorCode = 0
	ErrNullPointer     ErrorCode = 1
	ErrInvalidUtf8     ErrorCode = 2
	ErrModelNotFound   ErrorCode = 3
	ErrLoadFailed      ErrorCode = 4
	ErrInferenceFailed ErrorCode = 5
	ErrGpuUnavailable  ErrorCode = 6
	ErrInvalidConfig   ErrorCode = 7
	ErrUnknown         ErrorCode = 255
)

// RuntimeError is an error returned by the mlrt runtime.
type RuntimeError struct {
	Code    ErrorCode
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("mlrt: %s (code %d)", e.Message, e.Code)
}
