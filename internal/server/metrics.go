package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

const namespace = "tasklist"

// Metrics holds the service's Prometheus collectors. It also observes page
// submissions for the engine.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	pageSaves     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	rejections    *prometheus.CounterVec
}

var _ form.Observer = (*Metrics)(nil)

// NewMetrics creates collectors registered on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		pageSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pages",
			Name:      "saves_total",
			Help:      "Accepted page submissions.",
		}, []string{"task", "page", "changed"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "review",
			Name:      "invalidations_total",
			Help:      "Completed reviews discarded because an answer changed.",
		}, []string{"task"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pages",
			Name:      "validation_failures_total",
			Help:      "Page submissions rejected by validation.",
		}, []string{"task", "page"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.pageSaves,
		m.invalidations,
		m.rejections,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Saved(taskID, pageID string, res form.SaveResult) {
	m.pageSaves.WithLabelValues(taskID, pageID, strconv.FormatBool(res.Changed)).Inc()
	if res.Invalidated {
		m.invalidations.WithLabelValues(taskID).Inc()
	}
}

func (m *Metrics) Rejected(taskID, pageID string, _ map[string]string) {
	m.rejections.WithLabelValues(taskID, pageID).Inc()
}

func (m *Metrics) recordRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
