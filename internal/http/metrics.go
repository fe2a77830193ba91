package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exposed on /metrics. Each instance owns its
// registry so servers can be created repeatedly, e.g. in tests.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal     *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odesli_lookups_total",
				Help: "Total number of link lookups served",
			},
			[]string{"mode", "outcome"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "odesli_upstream_request_duration_seconds",
				Help:    "Time spent waiting for the Odesli API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odesli_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"path", "code"},
		),
	}

	metrics.registry.MustRegister(
		metrics.LookupsTotal,
		metrics.UpstreamDuration,
		metrics.RequestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return metrics
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveUpstream records the duration of one request to the Odesli API.
func (m *Metrics) ObserveUpstream(status string, duration time.Duration) {
	m.UpstreamDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func (m *Metrics) RecordLookup(mode, outcome string) {
	m.LookupsTotal.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) RecordRequest(path, code string) {
	m.RequestsTotal.WithLabelValues(path, code).Inc()
}
