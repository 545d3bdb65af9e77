package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nadavyigal/originguard/internal/policy"
)

// Metrics holds the Prometheus collectors for origin validation.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// validationsTotal counts validations by result (allowed, rejected).
	validationsTotal *prometheus.CounterVec

	// violationsTotal counts rejections by violation type.
	violationsTotal *prometheus.CounterVec

	// invalidPatternsTotal counts pattern compile failures seen while validating.
	invalidPatternsTotal prometheus.Counter

	// sinkFailuresTotal counts monitoring sink panics swallowed by Notify.
	sinkFailuresTotal prometheus.Counter
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		validationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cors",
			Name:      "validations_total",
			Help:      "Origin validations by result",
		}, []string{"result"}),
		violationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cors",
			Name:      "violations_total",
			Help:      "Rejected origin validations by violation type",
		}, []string{"violation_type"}),
		invalidPatternsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cors",
			Name:      "invalid_patterns_total",
			Help:      "Wildcard origin patterns that failed to compile during validation",
		}),
		sinkFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cors",
			Name:      "monitoring_sink_failures_total",
			Help:      "Violation events lost to a failing monitoring sink",
		}),
	}
}

// RecordVerdict counts one validation.
func (m *Metrics) RecordVerdict(v policy.Verdict) {
	if m == nil {
		return
	}
	if v.Allowed() {
		m.validationsTotal.WithLabelValues("allowed").Inc()
		return
	}
	m.validationsTotal.WithLabelValues("rejected").Inc()
	m.violationsTotal.WithLabelValues(v.Violation().String()).Inc()
}

// RecordInvalidPattern counts one pattern compile failure.
func (m *Metrics) RecordInvalidPattern() {
	if m == nil {
		return
	}
	m.invalidPatternsTotal.Inc()
}

// RecordSinkFailure counts one swallowed sink failure.
func (m *Metrics) RecordSinkFailure() {
	if m == nil {
		return
	}
	m.sinkFailuresTotal.Inc()
}
