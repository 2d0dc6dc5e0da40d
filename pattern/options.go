package pattern

// compileConfig holds the resolved options for a single Compile call.
type compileConfig struct {
	maxSegments int
}

// CompileOption configures a Compile call. Grounded on the functional
// options idiom used throughout this corpus for optional behavior.
type CompileOption func(*compileConfig)

// WithMaxSegments caps the number of segments a pattern may compile to.
// n may not exceed the Format's fixed storage capacity (64); values above
// that are clamped down to it. The default, when no option is given, is
// also 64.
func WithMaxSegments(n int) CompileOption {
	return func(c *compileConfig) {
		if n > maxSegments {
			n = maxSegments
		}
		c.maxSegments = n
	}
}

func resolveOptions(opts []CompileOption) compileConfig {
	cfg := compileConfig{maxSegments: maxSegments}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxSegments <= 0 {
		cfg.maxSegments = maxSegments
	}
	return cfg
}
