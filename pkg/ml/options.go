package ml

type options struct {
	quiet  bool
	device string // "cpu" || "gpu"
}

// Option configures a model wrapper at construction time.
type Option func(*options)

// WithQuiet suppresses runtime progress output during model loading.
func WithQuiet(quiet bool) Option {
	return func(o *options) {
		o.quiet = quiet
	}
}

// WithDevice selects the compute device, "cpu" (default) or "gpu".
func WithDevice(device string) Option {
	return func(o *options) {
		o.device = device
	}
}

func applyOptions(opts []Option) options {
	o := options{
		device: "cpu",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func deviceCode(device string) int32 {
	if device == "gpu" {
		return 1
	}
	return 0
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
