package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks server-level counters on a private registry so tests can
// construct independent instances.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesRun        prometheus.Counter
	ParseFailures      prometheus.Counter
	TimestampFallbacks prometheus.Counter
	RequestErrors      prometheus.Counter
}

// NewMetrics builds a metrics set backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		AnalysesRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatwrapped_analyses_total",
			Help: "Completed chat analyses.",
		}),
		ParseFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatwrapped_parse_failures_total",
			Help: "Export files skipped because they failed to parse.",
		}),
		TimestampFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatwrapped_timestamp_fallbacks_total",
			Help: "HTML messages that received wall-clock stand-in timestamps.",
		}),
		RequestErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "chatwrapped_request_errors_total",
			Help: "HTTP requests answered with a 5xx status.",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
