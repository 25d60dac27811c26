package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Send attempts by outcome",
		},
		[]string{"outcome"},
	)

	engagementEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_engagement_events_total",
			Help: "First opens and first clicks consumed from the event bus",
		},
		[]string{"type"},
	)

	trackingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_errors_total",
			Help: "Swallowed tracking store errors",
		},
		[]string{"type"},
	)

	llmRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Chat completion requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	warmupRamps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warmup_ramps_total",
			Help: "Warmup limits raised by the ramp worker",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps label cardinality bounded by using the chi route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// RecordEmailSend outcome is "sent", "rate_limited" or "failed".
func RecordEmailSend(outcome string) {
	emailsSent.WithLabelValues(outcome).Inc()
}

func RecordEngagement(eventType string) {
	engagementEvents.WithLabelValues(eventType).Inc()
}

func RecordTrackingError(eventType string) {
	trackingErrors.WithLabelValues(eventType).Inc()
}

func RecordLLMRequest(provider, outcome string) {
	llmRequests.WithLabelValues(provider, outcome).Inc()
}

func RecordWarmupRamps(n int) {
	warmupRamps.Add(float64(n))
}
