package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for obra_dao_operations_total
const (
	OutcomeCommitted = "committed"
	OutcomeFailed    = "failed"
)

// Metrics counts DAO transactions by operation and outcome
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the DAO collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obra",
			Subsystem: "dao",
			Name:      "operations_total",
			Help:      "DAO transactions by operation and outcome.",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obra",
			Subsystem: "dao",
			Name:      "operation_duration_seconds",
			Help:      "Time from begin to commit or rollback.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"op"}),
	}
	reg.MustRegister(m.operations, m.duration)
	return m
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeCommitted
	if err != nil {
		outcome = OutcomeFailed
	}
	m.operations.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
