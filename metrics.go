package swiftmt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the codec's Prometheus instrumentation. Unlike the
// teacher's gateway, this package never serves /metrics itself — callers
// that run an HTTP server register Metrics.Registry with their own
// handler; the codec only increments counters.
type Metrics struct {
	Registry *prometheus.Registry

	ParseTotal      *prometheus.CounterVec // labels: message_type, outcome
	ParseDuration   *prometheus.HistogramVec
	ValidationTotal *prometheus.CounterVec // labels: message_type, outcome
	ValidationErrors *prometheus.CounterVec // labels: rule_id, kind
	EmitTotal       *prometheus.CounterVec // labels: message_type, outcome
}

// NewMetrics creates and registers the codec's metrics against a fresh
// registry, namespaced under "swiftmt".
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		ParseTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "swiftmt",
				Name:      "parse_total",
				Help:      "Total number of Parse calls by message type and outcome.",
			},
			[]string{"message_type", "outcome"},
		),
		ParseDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "swiftmt",
				Name:      "parse_duration_seconds",
				Help:      "Parse latency by message type.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"message_type"},
		),
		ValidationTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "swiftmt",
				Name:      "validation_total",
				Help:      "Total number of Validate calls by message type and outcome.",
			},
			[]string{"message_type", "outcome"},
		),
		ValidationErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "swiftmt",
				Name:      "validation_errors_total",
				Help:      "Total number of validation errors by SR rule id and kind.",
			},
			[]string{"rule_id", "kind"},
		),
		EmitTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "swiftmt",
				Name:      "emit_total",
				Help:      "Total number of Emit calls by message type and outcome.",
			},
			[]string{"message_type", "outcome"},
		),
	}
	return m
}

// nopMetrics is a Metrics whose counters exist but are registered to a
// throwaway registry, used as the zero-config default so Message methods
// never need a nil check.
func nopMetrics() *Metrics { return NewMetrics() }

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
