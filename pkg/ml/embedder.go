package ml

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Embedder encodes text into normalized vector embeddings.
type Embedder struct {
	handle uintptr
	mu     sync.Mutex
	closed bool
}

// NewEmbedder loads the named embedding model into memory. Construction
// fails if the runtime cannot load the weights; the caller must not serve
// traffic on a failed embedder.
func NewEmbedder(model string, opts ...Option) (*Embedder, error) {
	var initErr error
	ffiOnce.Do(func() { initErr = initFFI() })
	if initErr != nil {
		return nil, fmt.Errorf("initializing mlrt: %w", initErr)
	}

	o := applyOptions(opts)

	modelStr, keepModel := cString(model)
	defer keepModel()

	var config ffiEmbedderConfig
	config.Device = deviceCode(o.device)
	config.ModelName = modelStr
	config.Normalize = 1
	config.Quiet = boolToInt(o.quiet)

	var handle uintptr
	r1, _, _ := purego.SyscallN(
		_embedderNewSym,
		uintptr(unsafe.Pointer(&config)),
		uintptr(unsafe.Pointer(&handle)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	return &Embedder{handle: handle}, nil
}

// EncodeBatch encodes the texts and returns one unit-length vector per text,
// in input order.
func (e *Embedder) EncodeBatch(texts []string) ([][]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, errors.New("embedder is closed")
	}

	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	cStrs, keep := cStrings(texts)
	defer keep()

	var result ffiFloat2DArray
	r1, _, _ := purego.SyscallN(
		_embedderEncodeBatchSym,
		e.handle,
		uintptr(unsafe.Pointer(&cStrs[0])),
		uintptr(len(texts)),
		uintptr(unsafe.Pointer(&result)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	vecs := float2DArrayToSlice(result)
	freeFloat2DArray(result)
	return vecs, nil
}

// Dim returns the dimensionality of the embedding model.
func (e *Embedder) Dim() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int(_embedderDim(e.handle))
}

// Close releases the embedder resources. Safe to call multiple times.
func (e *Embedder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	_embedderFree(e.handle)
	e.handle = 0
	return nil
}

func floatArrayToSlice(arr ffiFloatArray) []float32 {
	count := int(arr.Len)
	if count == 0 || arr.Data == 0 {
		return []float32{}
	}
	result := make([]float32, count)
	src := unsafe.Slice((*float32)(unsafe.Pointer(arr.Data)), count)
	copy(result, src)
	return result
}

func float2DArrayToSlice(arr ffiFloat2DArray) [][]float32 {
	rows := int(arr.Rows)
	cols := int(arr.Cols)
	if rows == 0 || cols == 0 || arr.Data == 0 {
		return [][]float32{}
	}
	flat := unsafe.Slice((*float32)(unsafe.Pointer(arr.Data)), rows*cols)
	result := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		result[i] = make([]float32, cols)
		copy(result[i], flat[i*cols:(i+1)*cols])
	}
	return result
}
