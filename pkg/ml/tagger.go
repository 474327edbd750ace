package ml

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Span is one aggregated token-classification span detected in a text:
// the raw surface text, the entity label (e.g. ORG, PER, LOC) and the
// model's confidence.
type Span struct {
	Text  string
	Label string
	Score float32
}

// Tagger runs token classification (named-entity recognition) over text.
type Tagger struct {
	handle uintptr
	mu     sync.Mutex
	closed bool
}

// NewTagger loads the named token-classification model into memory.
func NewTagger(model string, opts ...Option) (*Tagger, error) {
	var initErr error
	ffiOnce.Do(func() { initErr = initFFI() })
	if initErr != nil {
		return nil, fmt.Errorf("initializing mlrt: %w", initErr)
	}

	o := applyOptions(opts)

	modelStr, keepModel := cString(model)
	defer keepModel()

	var config ffiTaggerConfig
	config.Device = deviceCode(o.device)
	config.ModelName = modelStr
	config.Quiet = boolToInt(o.quiet)

	var handle uintptr
	r1, _, _ := purego.SyscallN(
		_taggerNewSym,
		uintptr(unsafe.Pointer(&config)),
		uintptr(unsafe.Pointer(&handle)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	return &Tagger{handle: handle}, nil
}

// Tag runs the model on the text and returns the detected spans in the
// model's raw output order. Sub-word continuation markers are left intact;
// cleaning is the caller's concern.
func (t *Tagger) Tag(text string) ([]Span, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, errors.New("tagger is closed")
	}

	textPtr, keepText := cString(text)
	defer keepText()

	var results ffiSpans
	r1, _, _ := purego.SyscallN(
		_taggerTagSym,
		t.handle,
		textPtr,
		uintptr(unsafe.Pointer(&results)),
	)

	code := int32(r1)
	if code != 0 {
		return nil, lastError(code)
	}

	defer freeSpans(results)
	return parseSpans(results), nil
}

// Close releases the tagger resources. Safe to call multiple times.
func (t *Tagger) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	_taggerFree(t.handle)
	t.handle = 0
	return nil
}

func parseSpans(results ffiSpans) []Span {
	count := int(results.Len)
	if count == 0 {
		return []Span{}
	}

	structSize := unsafe.Sizeof(ffiSpan{})
	out := make([]Span, count)

	for i := 0; i < count; i++ {
		ptr := results.Spans + uintptr(i)*structSize
		item := (*ffiSpan)(unsafe.Pointer(ptr))
		out[i] = Span{
			Text:  goString(item.Text),
			Label: goString(item.Label),
			Score: item.Score,
		}
	}

	return out
}
