package ml

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// C struct layouts shared with the mlrt runtime.

type ffiEmbedderConfig struct {
	Device    int32
	_         int32 // padding
	CacheDir  uintptr
	ModelName uintptr
	Normalize int32
	Quiet     int32
}

type ffiCrossEncoderConfig struct {
	Device    int32
	_         int32 // padding
	CacheDir  uintptr
	ModelName uintptr
	Quiet     int32
	_2        int32 // padding
}

type ffiTaggerConfig struct {
	Device    int32
	_         int32 // padding
	CacheDir  uintptr
	ModelName uintptr
	Quiet     int32
	_2        int32 // padding
}

type ffiFloatArray struct {
	Data uintptr
	Len  uintptr
}

type ffiFloat2DArray struct {
	Data uintptr
	Rows uintptr
	Cols uintptr
}

type ffiSpan struct {
	Text  uintptr
	Label uintptr
	Score float32
	_     [4]byte // padding
}

type ffiSpans struct {
	Spans uintptr
	Len   uintptr
}

var (
	ffiOnce sync.Once

	// Error handling
	_lastErrorMessage func() uintptr

	// Embedder
	_embedderNewSym         uintptr
	_embedderFree           func(handle uintptr)
	_embedderEncodeBatchSym uintptr
	_embedderDim            func(handle uintptr) uintptr

	// Cross-encoder
	_crossEncoderNewSym        uintptr
	_crossEncoderFree          func(handle uintptr)
	_crossEncoderScoreSym      uintptr
	_crossEncoderScoreBatchSym uintptr

	// Tagger
	_taggerNewSym uintptr
	_taggerFree   func(handle uintptr)
	_taggerTagSym uintptr

	// Result buffers
	_floatArrayFreeSym   uintptr
	_float2DArrayFreeSym uintptr
	_spansFreeSym        uintptr
)

func initFFI() error {
	handle, err := loadLibrary()
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&_lastErrorMessage, handle, "mlrt_last_error_message")

	// Embedder
	_embedderNewSym, err = purego.Dlsym(handle, "mlrt_embedder_new")
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&_embedderFree, handle, "mlrt_embedder_free")
	_embedderEncodeBatchSym, err = purego.Dlsym(handle, "mlrt_embedder_encode_batch")
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&_embedderDim, handle, "mlrt_embedder_dim")

	// Cross-encoder
	_crossEncoderNewSym, err = purego.Dlsym(handle, "mlrt_cross_encoder_new")
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&_crossEncoderFree, handle, "mlrt_cross_encoder_free")
	_crossEncoderScoreSym, err = purego.Dlsym(handle, "mlrt_cross_encoder_score")
	if err != nil {
		return err
	}
	_crossEncoderScoreBatchSym, err = purego.Dlsym(handle, "mlrt_cross_encoder_score_batch")
	if err != nil {
		return err
	}

	// Tagger
	_taggerNewSym, err = purego.Dlsym(handle, "mlrt_tagger_new")
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&_taggerFree, handle, "mlrt_tagger_free")
	_taggerTagSym, err = purego.Dlsym(handle, "mlrt_tagger_tag")
	if err != nil {
		return err
	}

	// Result buffers
	_floatArrayFreeSym, err = purego.Dlsym(handle, "mlrt_float_array_free")
	if err != nil {
		return err
	}
	_float2DArrayFreeSym, err = purego.Dlsym(handle, "mlrt_float_2d_array_free")
	if err != nil {
		return err
	}
	_spansFreeSym, err = purego.Dlsym(handle, "mlrt_spans_free")
	if err != nil {
		return err
	}

	return nil
}

func cString(s string) (uintptr, func()) {
	b := append([]byte(s), 0)
	ptr := unsafe.Pointer(&b[0])
	// prevent GC from collecting the slice while we use the pointer
	return uintptr(ptr), func() {
		_ = b
	}
}

func cStrings(strs []string) ([]uintptr, func()) {
	ptrs := make([]uintptr, len(strs))
	keeps := make([]func(), len(strs))
	for i, s := range strs {
		ptrs[i], keeps[i] = cString(s)
	}
	return ptrs, func() {
		for _, k := range keeps {
			k()
		}
	}
}

func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
	}
	bytes := make([]byte, length)
	for i := 0; i < length; i++ {
		bytes[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(bytes)
}

// lastError builds a RuntimeError from the runtime's thread-local message.
func lastError(code int32) error {
	ptr := _lastErrorMessage()
	if ptr == 0 {
		return &RuntimeError{
			Code:    ErrorCode(code),
			Message: "unknown error",
		}
	}
	return &RuntimeError{
		Code:    ErrorCode(code),
		Message: goString(ptr),
	}
}

func freeFloatArray(arr ffiFloatArray) {
	if _floatArrayFreeSym != 0 {
		purego.SyscallN(_floatArrayFreeSym, arr.Data, arr.Len)
	}
}

func freeFloat2DArray(arr ffiFloat2DArray) {
	if _float2DArrayFreeSym != 0 {
		purego.SyscallN(_float2DArrayFreeSym, arr.Data, arr.Rows, arr.Cols)
	}
}

func freeSpans(spans ffiSpans) {
	if _spansFreeSym != 0 {
		purego.SyscallN(_spansFreeSym, spans.Spans, spans.Len)
	}
}
