package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/go-holiday/internal/config"
)

// metrics holds the collectors of one server. Each server owns its registry
// so several servers can live in one process.
type metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts requests by route, method and status code.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration stores the processing time of every request by route.
	RequestDuration *prometheus.HistogramVec
	// CacheHits counts responses served from the response cache.
	CacheHits prometheus.Counter
	// CacheEntries is the number of rendered responses held in memory.
	CacheEntries prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Subsystem: config.MetricsSubsystem,
			Name:      "requests_total",
			Help:      "Number of HTTP requests including ones resulting in errors",
		}, []string{config.MetricLabelRoute, "method", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.MetricsNamespace,
			Subsystem: config.MetricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request processing time",
			Buckets:   prometheus.DefBuckets,
		}, []string{config.MetricLabelRoute}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Subsystem: config.MetricsSubsystem,
			Name:      "cache_hits_total",
			Help:      "Number of responses served from the response cache",
		}),
		CacheEntries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricsNamespace,
			Subsystem: config.MetricsSubsystem,
			Name:      "cache_entries",
			Help:      "Number of rendered responses held in the response cache",
		}),
	}
}

// instrument wraps h with the request counter and duration histogram of route.
func (m *metrics) instrument(route string, h http.HandlerFunc) http.Handler {
	labels := prometheus.Labels{config.MetricLabelRoute: route}
	return promhttp.InstrumentHandlerDuration(
		m.RequestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.RequestsTotal.MustCurryWith(labels), h),
	)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
