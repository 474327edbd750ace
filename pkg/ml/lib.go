package ml

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

var (
	libOnce sync.Once
	libErr  error
	lib     uintptr

	libPathMu       sync.Mutex
	libPathOverride string
)

// SetLibraryPath overrides where the mlrt shared library is loaded from.
// Must be called before the first model wrapper is constructed; later calls
// have no effect.
func SetLibraryPath(path string) {
	libPathMu.Lock()
	defer libPathMu.Unlock()
	libPathOverride = path
}

func loadLibrary() (uintptr, error) {
	libOnce.Do(func() {
		lib, libErr = doLoadLibrary()
	})
	return lib, libErr
}

func doLoadLibrary() (uintptr, error) {
	libPathMu.Lock()
	path := libPathOverride
	libPathMu.Unlock()

	if path == "" {
		path = os.Getenv("MLRT_LIBRARY")
	}
	if path == "" {
		switch runtime.GOOS {
		case "linux":
			path = "libmlrt.so"
		case "darwin":
			path = "libmlrt.dylib"
		case "windows":
			path = "mlrt.dll"
		default:
			return 0, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
		}
	}

	handle, err := openLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("loading mlrt runtime %q: %w", path, err)
	}
	return handle, nil
}
