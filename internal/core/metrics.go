package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation counters and latencies for the audit store.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewMetrics constructs a recorder and registers its collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "auditcore",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Count of audit store operations by name.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "auditcore",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of audit store operations by name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.durations)
	}
	return m
}

// Observe records one completed operation.
func (m *Metrics) Observe(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}
