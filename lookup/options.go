package lookup

import "log/slog"

// Option is a function that configures a lookup call or a Lookup.
type Option func(*options)

type options struct {
	logger  *slog.Logger // Debug records for fallback scans and parse failures
	metrics *Metrics     // nil disables counting
}

var discardLogger = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

func defaultOptions() *options {
	return &options{
		logger:  discardLogger,
		metrics: defaultMetrics,
	}
}

// WithLogger sets the logger that receives debug records. Lookups are silent
// by default. A nil logger keeps the default.
//
// Example:
//
//	v, ok := lookup.Get(src, "region", lookup.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics routes counters to m instead of the package default, which is
// registered with prometheus.DefaultRegisterer. Passing nil disables metrics.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	m := lookup.NewMetrics(reg)
//	v, ok := lookup.Get(src, "region", lookup.WithMetrics(m))
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()

	for _, opt := range opts {
		opt(o)
	}

	return o
}
