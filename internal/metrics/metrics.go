// Package metrics provides Prometheus metrics for the oscy web tier.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oscy"

// Image lookup outcomes. Hit means served from the cache or the store;
// Missing means TMDB has no image for the id.
const (
	ImageHit      = "hit"
	ImageResolved = "resolved"
	ImageMissing  = "missing"
	ImageFailed   = "failed"
	ImageDisabled = "disabled"
)

// Metrics holds every collector on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	backendRequests     *prometheus.CounterVec
	backendDuration     *prometheus.HistogramVec
	imageLookups        *prometheus.CounterVec
	pendingCeremonies   prometheus.Counter
}

// New registers all collectors on a fresh registry, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		backendRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Requests to the backend API by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		backendDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend API latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		imageLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "images",
			Name:      "lookups_total",
			Help:      "Top-five image lookups by outcome.",
		}, []string{"outcome"}),
		pendingCeremonies: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topfive",
			Name:      "pending_total",
			Help:      "Ceremony views served while results were pending.",
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordBackendRequest records one backend API call.
func (m *Metrics) RecordBackendRequest(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// RecordImageLookup records the outcome of one image slot.
func (m *Metrics) RecordImageLookup(outcome string) {
	if m == nil {
		return
	}
	m.imageLookups.WithLabelValues(outcome).Inc()
}

// RecordPendingCeremony counts a ceremony view served without a top five.
func (m *Metrics) RecordPendingCeremony() {
	if m == nil {
		return
	}
	m.pendingCeremonies.Inc()
}
