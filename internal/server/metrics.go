package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "benchfn"

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Evaluations     *prometheus.CounterVec
	Errors          *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
	CachedFunctions prometheus.Gauge
	Panics          prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Number of successful function evaluations.",
		}, []string{"function"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluation_errors_total",
			Help:      "Number of failed operations by function and error kind.",
		}, []string{"function", "kind"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating functions.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"function"}),
		CachedFunctions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cached_functions",
			Help:      "Number of constructed functions held for reuse.",
		}),
		Panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "recovered_panics_total",
			Help:      "Number of panics recovered by the HTTP middleware.",
		}),
	}
}
