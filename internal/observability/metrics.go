package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "football_scores"

// Metrics records fetch and extraction outcomes on a private Prometheus
// registry. It satisfies both the fetcher and the orchestrator observer ports.
type Metrics struct {
	registry       *prometheus.Registry
	fetchTotal     *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	extractions    *prometheus.CounterVec
	matchesEmitted *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "fetch_total",
				Help:      "BBC Sport page fetches by page kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "fetch_duration_seconds",
				Help:      "BBC Sport page fetch latency",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"kind"},
		),
		extractions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "extraction_total",
				Help:      "Extraction runs by record kind and the strategy that produced data",
			},
			[]string{"kind", "strategy"},
		),
		matchesEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "matches_emitted_total",
				Help:      "Normalized matches returned per league",
			},
			[]string{"league"},
		),
	}

	m.registry.MustRegister(
		m.fetchTotal,
		m.fetchDuration,
		m.extractions,
		m.matchesEmitted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveFetch(kind, outcome string, elapsed time.Duration) {
	m.fetchTotal.WithLabelValues(kind, outcome).Inc()
	m.fetchDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExtraction(kind, strategy string) {
	m.extractions.WithLabelValues(kind, strategy).Inc()
}

func (m *Metrics) ObserveMatches(league string, count int) {
	if count <= 0 {
		return
	}
	m.matchesEmitted.WithLabelValues(league).Add(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
