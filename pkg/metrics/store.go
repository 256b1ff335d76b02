package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records key-value store round-trips per backend and operation.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_op_duration_seconds",
		Help:    "Duration of key-value store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "op"})
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_op_total",
		Help: "Key-value store operations issued.",
	}, []string{"backend", "op"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_op_failures_total",
		Help: "Key-value store operations that failed and degraded softly.",
	}, []string{"backend", "op"})
	reg.MustRegister(duration, ops, failures)
	return &StoreMetrics{
		duration: duration,
		ops:      ops,
		failures: failures,
	}
}

// ObserveDuration records the duration of one operation.
func (s *StoreMetrics) ObserveDuration(backend, op string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(backend), normalizeLabel(op)).Observe(duration.Seconds())
}

// IncOp increments the operation counter.
func (s *StoreMetrics) IncOp(backend, op string) {
	if s == nil || s.ops == nil {
		return
	}
	s.ops.WithLabelValues(normalizeLabel(backend), normalizeLabel(op)).Inc()
}

// IncFailure increments the failure counter.
func (s *StoreMetrics) IncFailure(backend, op string) {
	if s == nil || s.failures == nil {
		return
	}
	s.failures.WithLabelValues(normalizeLabel(backend), normalizeLabel(op)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
