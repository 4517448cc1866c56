package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks validation outcomes served over HTTP
type Metrics struct {
	validations   *prometheus.CounterVec
	fatalFindings prometheus.Counter
	duration      *prometheus.HistogramVec
}

// NewMetrics registers the API's collectors on the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "enercheck",
			Name:      "validations_total",
			Help:      "Validation requests served, by entity kind and verdict.",
		}, []string{"kind", "valid"}),
		fatalFindings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "enercheck",
			Name:      "fatal_findings_total",
			Help:      "Fatal physical-plausibility findings across all reports.",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "enercheck",
			Name:      "validation_duration_seconds",
			Help:      "End-to-end request duration per validation kind.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
	}
}

// observe records one served validation
func (m *Metrics) observe(kind string, valid bool, fatalErrors int, elapsed time.Duration) {
	verdict := "false"
	if valid {
		verdict = "true"
	}
	m.validations.WithLabelValues(kind, verdict).Inc()
	m.fatalFindings.Add(float64(fatalErrors))
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
