package ml

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// CrossEncoder scores query-document relevance by running each pair jointly
// through one model. Higher scores mean more relevant; the range is model
// dependent and not normalized.
type CrossEncoder struct {
	handle uintptr
	mu     sync.Mutex
	closed bool
}

// NewCrossEncoder loads the named cross-encoder model into memory.
func NewCrossEncoder(model string, opts ...Option) (*CrossEncoder, error) {
	var initErr error
	ffiOnce.Do(func() { initErr = initFFI() })
	if initErr != nil {
		return nil, fmt.Errorf("initializing mlrt: %w", initErr)
	}

	o := applyOptions(opts)

	modelStr, keepModel := cString(model)
	defer keepModel()

	var config ffiCrossEncoderConfig
	config.Device = deviceCode(o.device)
	config.ModelName = modelStr
	config.Quiet = boolToInt(o.quiet)

	var handle uintptr
	r1, _, _ := purego.SyscallN(
		_crossEncoderNewSym,
		uintptr(unsafe.Pointer(&config)),
		uintptr(unsafe.Pointer(&handle)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	return &CrossEncoder{handle: handle}, nil
}

// Score returns the relevance score for a single query-document pair.
func (ce *CrossEncoder) Score(query, document string) (float32, error) {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	if ce.closed {
		return 0, errors.New("cross-encoder is closed")
	}

	qPtr, keepQ := cString(query)
	defer keepQ()
	dPtr, keepD := cString(document)
	defer keepD()

	var result float32
	r1, _, _ := purego.SyscallN(
		_crossEncoderScoreSym,
		ce.handle,
		qPtr,
		dPtr,
		uintptr(unsafe.Pointer(&result)),
	)

	code := int32(r1)
	if code != 0 {
		return 0, lastError(code)
	}

	return result, nil
}

// ScoreBatch scores every document against the query and returns the scores
// in document order.
func (ce *CrossEncoder) ScoreBatch(query string, documents []string) ([]float32, error) {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	if ce.closed {
		return nil, errors.New("cross-encoder is closed")
	}

	if len(documents) == 0 {
		return []float32{}, nil
	}

	qPtr, keepQ := cString(query)
	defer keepQ()

	cStrs, keep := cStrings(documents)
	defer keep()

	var result ffiFloatArray
	r1, _, _ := purego.SyscallN(
		_crossEncoderScoreBatchSym,
		ce.handle,
		qPtr,
		uintptr(unsafe.Pointer(&cStrs[0])),
		uintptr(len(documents)),
		uintptr(unsafe.Pointer(&result)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	scores := floatArrayToSlice(result)
	freeFloatArray(result)
	return scores, nil
}

// Close releases the cross-encoder resources. Safe to call multiple times.
func (ce *CrossEncoder) Close() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	if ce.closed {
		return nil
	}
	ce.closed = true
	_crossEncoderFree(ce.handle)
	ce.handle = 0
	return nil
}
