package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	proxiedTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		proxiedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotebridge_proxied_requests_total",
				Help: "Total number of quote requests proxied upstream",
			},
			[]string{"status_class"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotebridge_upstream_errors_total",
				Help: "Total number of upstream errors by kind",
			},
			[]string{"kind"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quotebridge_upstream_duration_seconds",
				Help:    "Duration of upstream chart requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"interval"},
		),
	}
}

// RecordProxied records a proxied quote request by status class.
func (r *Recorder) RecordProxied(statusClass string) {
	r.proxiedTotal.WithLabelValues(statusClass).Inc()
}

// RecordError records an upstream error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamLatency records upstream call latency in seconds.
func (r *Recorder) RecordUpstreamLatency(interval string, seconds float64) {
	r.upstreamLatency.WithLabelValues(interval).Observe(seconds)
}
