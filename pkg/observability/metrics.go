package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/conform/pkg/schema"
)

// Metrics counts validation outcomes and their latency.
type Metrics struct {
	validations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conform_validations_total",
				Help: "Total number of validation calls by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "conform_validation_duration_seconds",
				Help:    "Duration of validation calls",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.validations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one validation call. It satisfies schema.Observer.
func (m *Metrics) Observe(outcome schema.Outcome, elapsed time.Duration) {
	m.validations.WithLabelValues(string(outcome)).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// Option returns the validator option that wires these metrics in.
func (m *Metrics) Option() schema.Option {
	return schema.WithObserver(m.Observe)
}
