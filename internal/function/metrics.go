package function

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for the generate endpoint.
type Metrics struct {
	requests *prometheus.CounterVec
	attempts prometheus.Histogram
	duration prometheus.Histogram
}

// NewMetrics registers the endpoint's collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordsearch",
			Name:      "generate_requests_total",
			Help:      "Generate requests by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordsearch",
			Name:      "populate_attempts",
			Help:      "Outer attempts needed per successful puzzle.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 1000},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordsearch",
			Name:      "populate_duration_seconds",
			Help:      "Time spent populating one puzzle.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.attempts, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeRequest(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}
