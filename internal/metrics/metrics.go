package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_http_requests_total",
			Help: "Total number of HTTP requests by method, route, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maintenance_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SheetReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_sheet_reads_total",
			Help: "Reads against the workbook backend by worksheet and result.",
		},
		[]string{"sheet", "result"},
	)

	SheetCacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_sheet_cache_hits_total",
			Help: "Sheet reads served from the Redis cache.",
		},
		[]string{"sheet"},
	)

	OfflineFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_offline_fallbacks_total",
			Help: "Sheet reads served from the last-known snapshot because the backend was unreachable.",
		},
		[]string{"sheet"},
	)
)

// Handler returns the /metrics endpoint backed by a dedicated registry, so
// tests can mount it without double-registration panics.
func Handler() echo.HandlerFunc {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequestsTotal,
		httpRequestDuration,
		SheetReadsTotal,
		SheetCacheHitsTotal,
		OfflineFallbacksTotal,
	)
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latency per route.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
