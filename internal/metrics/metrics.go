package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	providerDuration prometheus.Histogram
}

// New registers the fact-check collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "factcheck_requests_total",
			Help: "Fact-check submissions by outcome.",
		}, []string{"outcome"}),
		providerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "factcheck_provider_duration_seconds",
			Help:    "Latency of the generative AI provider call.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}),
	}
}

func (m *Metrics) ObserveOutcome(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveProviderCall(d time.Duration) {
	m.providerDuration.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
