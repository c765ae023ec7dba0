package lookup

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pathNil   = "nil"
	pathEmpty = "empty"
	pathFast  = "fast"
	pathScan  = "scan"

	reasonMissing   = "missing"
	reasonMalformed = "malformed"
)

// Metrics groups the Prometheus counters lookups report to.
type Metrics struct {
	// calls counts lookups by resolution path and outcome.
	//
	// Labels:
	//   - path: "nil" when the source was nil, "empty" when a sized source
	//     held no pairs, "fast" when a Hashed source answered, "scan" when
	//     the pairs were scanned.
	//   - found: "true" or "false".
	//
	// A high share of path="scan" on large sources means callers should
	// wrap them with Index.
	calls *prometheus.CounterVec

	// parseFailures counts Parse*/Try* calls that produced no number.
	//
	// Labels:
	//   - reason: "missing" when the key was absent, "malformed" when the
	//     value could not be parsed.
	parseFailures *prometheus.CounterVec
}

// defaultMetrics is registered once with the default registry.
var defaultMetrics = NewMetrics(prometheus.DefaultRegisterer) //nolint:gochecknoglobals

// NewMetrics creates the lookup counters and registers them with reg.
// A nil reg creates unregistered counters. Registering twice with the same
// registry panics, as with any promauto metric.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seqkit_lookup_calls_total",
			Help: "The total number of key lookups, by resolution path and outcome",
		}, []string{"path", "found"}),
		parseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seqkit_lookup_parse_failures_total",
			Help: "The total number of parse-on-retrieve calls that failed",
		}, []string{"reason"}),
	}
}

func (m *Metrics) recordCall(path string, found bool) {
	if m == nil {
		return
	}

	m.calls.WithLabelValues(path, strconv.FormatBool(found)).Inc()
}

func (m *Metrics) recordParseFailure(reason string) {
	if m == nil {
		return
	}

	m.parseFailures.WithLabelValues(reason).Inc()
}
