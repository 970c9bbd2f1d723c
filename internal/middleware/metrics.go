package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the site's prometheus registry and collectors
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	contact  *prometheus.CounterVec
	notFound *prometheus.CounterVec
}

// NewMetrics registers the HTTP, contact and lookup collectors on a fresh
// registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engfolio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "engfolio",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engfolio",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		notFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engfolio",
			Name:      "project_lookup_misses_total",
			Help:      "Project detail lookups that resolved to not found, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.contact, m.notFound,
	)
	return m
}

// Middleware records request counts and latency
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ContactSubmitted counts a contact form outcome
func (m *Metrics) ContactSubmitted(outcome string) {
	m.contact.WithLabelValues(outcome).Inc()
}

// LookupMissed counts a project lookup that ended in not found
func (m *Metrics) LookupMissed(reason string) {
	m.notFound.WithLabelValues(reason).Inc()
}
