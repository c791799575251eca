// Package observability holds the Prometheus metrics of the dashboard API.
//
// Metrics are exposed on /metrics. All operations are safe for concurrent
// use and every method is a no-op on a nil *Metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "insight"

const (
	httpSubsystem     = "http"
	realtimeSubsystem = "realtime"
	exportSubsystem   = "export"
)

// Metrics holds all collectors of the service
type Metrics struct {
	// RequestsTotal counts handled requests.
	// Labels: route (registered path, not the raw URL), method, status
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures handler latency.
	// Labels: route
	RequestDurationSeconds *prometheus.HistogramVec

	// RealtimeEvents mirrors the live "events in the last minute" counter
	RealtimeEvents prometheus.Gauge

	// RealtimeActiveUsers mirrors the live active users counter
	RealtimeActiveUsers prometheus.Gauge

	// ExportsTotal counts generated exports.
	// Labels: table (cohorts, funnel, features), format (excel, pdf, csv)
	ExportsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates and registers all collectors on reg.
// Pass prometheus.NewRegistry() in tests to keep them isolated.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "requests_total",
				Help:      "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP handler latency in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"route"},
		),
		RealtimeEvents: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: realtimeSubsystem,
				Name:      "events",
				Help:      "Live events in the last minute",
			},
		),
		RealtimeActiveUsers: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: realtimeSubsystem,
				Name:      "active_users",
				Help:      "Live active users",
			},
		),
		ExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: exportSubsystem,
				Name:      "exports_total",
				Help:      "Total generated exports by table and format",
			},
			[]string{"table", "format"},
		),
		gatherer: reg,
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDurationSeconds.WithLabelValues(route).Observe(elapsed.Seconds())
}

// SetRealtime implements realtime.Gauges
func (m *Metrics) SetRealtime(events, activeUsers int) {
	if m == nil {
		return
	}
	m.RealtimeEvents.Set(float64(events))
	m.RealtimeActiveUsers.Set(float64(activeUsers))
}

func (m *Metrics) IncExport(table, format string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(table, format).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
