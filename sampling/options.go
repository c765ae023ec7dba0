package sampling

import (
	"log/slog"
	"math/rand/v2"
)

// Source produces uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it, which makes seeded,
// reproducible draws straightforward in tests.
type Source interface {
	Float64() float64
}

// Option is a function that configures a sampling sequence.
type Option func(*options)

type options struct {
	source Source       // Random values driving each draw
	logger *slog.Logger // Debug-level pool lifecycle records
}

// globalSource adapts the package-level math/rand/v2 generator to Source.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // G404: sampling order is not security sensitive
}

var discardLogger = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

func defaultOptions() *options {
	return &options{
		source: globalSource{},
		logger: discardLogger,
	}
}

// WithSource sets the random source used for draws. A nil source keeps the default.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	seq := sampling.FromSlice(items, sampling.WithSource(rng))
func WithSource(source Source) Option {
	return func(o *options) {
		if source != nil {
			o.source = source
		}
	}
}

// WithLogger sets the logger that receives debug records about pool
// allocation and release. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()

	for _, opt := range opts {
		opt(o)
	}

	return o
}
