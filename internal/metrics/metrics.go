package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the service's Prometheus collectors. It is constructed once
// in main and passed explicitly to services and middleware, so there is no
// package-level metric state.
type Collector struct {
	userCreations prometheus.Counter
	imageUploads  prometheus.Counter
	dbOperations  prometheus.Histogram
	s3Operations  prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		userCreations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webapp_user_creations_total",
			Help: "Number of users created",
		}),
		imageUploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webapp_image_uploads_total",
			Help: "Number of images uploaded",
		}),
		dbOperations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "webapp_db_operation_seconds",
			Help:    "Time taken for database operations",
			Buckets: prometheus.DefBuckets,
		}),
		s3Operations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "webapp_s3_operation_seconds",
			Help:    "Time taken for object store operations",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webapp_http_requests_total",
			Help: "Number of HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webapp_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	reg.MustRegister(
		c.userCreations,
		c.imageUploads,
		c.dbOperations,
		c.s3Operations,
		c.httpRequests,
		c.httpDuration,
	)
	return c
}

// IncUserCreations increments the user creation counter.
func (c *Collector) IncUserCreations() {
	c.userCreations.Inc()
}

// IncImageUploads increments the image upload counter.
func (c *Collector) IncImageUploads() {
	c.imageUploads.Inc()
}

// ObserveDBOperation records the duration of a database operation.
func (c *Collector) ObserveDBOperation(d time.Duration) {
	c.dbOperations.Observe(d.Seconds())
}

// ObserveS3Operation records the duration of an object store operation.
func (c *Collector) ObserveS3Operation(d time.Duration) {
	c.s3Operations.Observe(d.Seconds())
}

// ObserveHTTPRequest records one handled request.
func (c *Collector) ObserveHTTPRequest(method, path, status string, d time.Duration) {
	c.httpRequests.WithLabelValues(method, path, status).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
