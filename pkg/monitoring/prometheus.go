package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use",
		},
	)

	// Business counters.
	exchangeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_exchange_requests_total",
			Help: "Point exchange requests by outcome",
		},
		[]string{"outcome"},
	)

	ngWordHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ng_word_hits_total",
			Help: "NG-word matches by severity",
		},
		[]string{"severity"},
	)

	mailDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_deliveries_total",
			Help: "Mail deliveries by status",
		},
		[]string{"status"},
	)

	userRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total user registrations",
		},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).
			Observe(time.Since(start).Seconds())
	}
}

// UpdateDBConnections publishes the in-use connection count.
func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}

// CountExchangeRequest records an exchange request outcome
// (accepted, rejected, failed).
func CountExchangeRequest(outcome string) {
	exchangeRequestsTotal.WithLabelValues(outcome).Inc()
}

// CountNgWordHit records an NG-word match by severity.
func CountNgWordHit(severity string) {
	ngWordHitsTotal.WithLabelValues(severity).Inc()
}

// CountMailDelivery records a mail delivery attempt (sent, failed).
func CountMailDelivery(status string) {
	mailDeliveriesTotal.WithLabelValues(status).Inc()
}

// CountUserRegistration records a completed registration.
func CountUserRegistration() {
	userRegistrationsTotal.Inc()
}
