// Package metrics provides Prometheus metrics collection for the packing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ListGenerationsTotal tracks total packing-list generations.
	ListGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_list_generations_total",
			Help: "Total number of packing-list generations",
		},
		[]string{"status"},
	)

	// ListGenerationDuration tracks packing-list generation duration.
	ListGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_list_generation_duration_seconds",
			Help:    "Packing-list generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// WeightEstimatesTotal tracks total luggage weight estimates.
	WeightEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weight_estimates_total",
			Help: "Total number of luggage weight estimates",
		},
		[]string{"status"},
	)

	// SuggestionLookupsTotal tracks related-item suggestion lookups by result.
	SuggestionLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_lookups_total",
			Help: "Total number of related-item suggestion lookups",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// XPAwardsTotal tracks experience points awarded by event kind.
	XPAwardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xp_awards_total",
			Help: "Total number of XP awards",
		},
		[]string{"event"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordListGeneration records metrics for a packing-list generation.
func RecordListGeneration(duration time.Duration, status string) {
	ListGenerationDuration.Observe(duration.Seconds())
	ListGenerationsTotal.WithLabelValues(status).Inc()
}

// RecordWeightEstimate records metrics for a luggage weight estimate.
func RecordWeightEstimate(status string) {
	WeightEstimatesTotal.WithLabelValues(status).Inc()
}

// RecordSuggestionLookup records metrics for a suggestion lookup.
func RecordSuggestionLookup(result string) {
	SuggestionLookupsTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordXPAward records metrics for an XP award.
func RecordXPAward(event string) {
	XPAwardsTotal.WithLabelValues(event).Inc()
}
