package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reply outcomes recorded by ObserveReply.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeUpstream = "upstream_error"
)

// ReplyMetrics exposes counters/histograms for the reply flow.
type ReplyMetrics struct {
	requestsTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func NewReplyMetrics(reg prometheus.Registerer) *ReplyMetrics {
	m := &ReplyMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "email_helper",
			Subsystem: "reply",
			Name:      "requests_total",
			Help:      "Total reply generation requests by outcome",
		}, []string{"outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "email_helper",
			Subsystem: "upstream",
			Name:      "duration_seconds",
			Help:      "Latency of completion API calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"provider", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.upstreamDuration)
	return m
}

// ObserveReply counts one reply request. Nil receivers are ignored so callers
// can run without metrics.
func (m *ReplyMetrics) ObserveReply(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *ReplyMetrics) ObserveUpstream(provider, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(provider, outcome).Observe(seconds)
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
