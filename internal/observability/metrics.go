package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records console traffic and outbound calls to the platform API.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	apiCallsTotal   *prometheus.CounterVec
	apiCallDuration *prometheus.HistogramVec
	sessionsExpired prometheus.Counter
	errorsTotal     *prometheus.CounterVec
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ndis_console",
				Name:      "http_requests_total",
				Help:      "Console HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ndis_console",
				Name:      "http_request_duration_seconds",
				Help:      "Console HTTP request latency.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		apiCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ndis_console",
				Subsystem: "api",
				Name:      "calls_total",
				Help:      "Outbound platform API calls by result status.",
			},
			[]string{"method", "path", "status"},
		),
		apiCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ndis_console",
				Subsystem: "api",
				Name:      "call_duration_seconds",
				Help:      "Outbound platform API call latency.",
				Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15},
			},
			[]string{"method", "path"},
		),
		sessionsExpired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ndis_console",
				Subsystem: "session",
				Name:      "expired_total",
				Help:      "Sessions cleared after an unauthorized API response.",
			},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ndis_console",
				Name:      "errors_total",
				Help:      "Console errors by route and code.",
			},
			[]string{"method", "route", "code"},
		),
	}
	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.requestsTotal, m.requestDuration,
		m.apiCallsTotal, m.apiCallDuration,
		m.sessionsExpired, m.errorsTotal,
	)
	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRequest counts a console request.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordError counts a console error by code.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(method, route, code).Inc()
}

// RecordAPICall counts an outbound call. Status 0 means no response was received.
func (m *Metrics) RecordAPICall(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.apiCallsTotal.WithLabelValues(method, path, label).Inc()
	m.apiCallDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSessionExpired counts a 401-driven session clear.
func (m *Metrics) RecordSessionExpired() {
	if m == nil {
		return
	}
	m.sessionsExpired.Inc()
}
