package service

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the prometheus registry and the collectors shared
// across the API.
type MetricsService struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	cacheDuration   prometheus.Histogram
	exportJobs      *prometheus.CounterVec
}

// NewMetricsService registers all collectors on a fresh registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	s := &MetricsService{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by query label.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Cache lookups that returned a value.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Cache lookups that missed.",
		}),
		cacheDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Cache operation latency.",
			Buckets: prometheus.DefBuckets,
		}),
		exportJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "export_jobs_total",
			Help: "Export jobs by terminal status.",
		}, []string{"status"}),
	}
	registry.MustRegister(s.requestDuration, s.requestTotal, s.dbQueryDuration,
		s.cacheHits, s.cacheMisses, s.cacheDuration, s.exportJobs)
	return s
}

// Handler exposes the registry for the /metrics route.
func (s *MetricsService) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// ObserveRequest records one served HTTP request.
func (s *MetricsService) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.requestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	s.requestTotal.WithLabelValues(method, route, status).Inc()
}

// ObserveDBQuery records the latency of a named database query.
func (s *MetricsService) ObserveDBQuery(query string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.dbQueryDuration.WithLabelValues(query).Observe(elapsed.Seconds())
}

// RecordCacheOperation records a cache lookup and whether it hit.
func (s *MetricsService) RecordCacheOperation(hit bool, elapsed time.Duration) {
	if s == nil {
		return
	}
	if hit {
		s.cacheHits.Inc()
	} else {
		s.cacheMisses.Inc()
	}
	s.cacheDuration.Observe(elapsed.Seconds())
}

// ObserveCacheWrite records the latency of a cache write.
func (s *MetricsService) ObserveCacheWrite(elapsed time.Duration) {
	if s == nil {
		return
	}
	s.cacheDuration.Observe(elapsed.Seconds())
}

// CountExportJob counts an export job reaching a terminal status.
func (s *MetricsService) CountExportJob(status string) {
	if s == nil {
		return
	}
	s.exportJobs.WithLabelValues(status).Inc()
}
