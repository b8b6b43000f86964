package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hideme_auth_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hideme_auth_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	// Page metrics
	pageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hideme_auth_page_renders_total",
			Help: "Total number of rendered auth pages",
		},
		[]string{"view", "state"},
	)

	// Reset flow metrics
	resetSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hideme_auth_reset_submissions_total",
			Help: "Total number of password reset submissions by outcome",
		},
		[]string{"outcome"},
	)

	logFunctionCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hideme_auth_log_function_call_duration_seconds",
			Help:    "Duration of calls to the password reset logging function",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	// Logging function metrics
	logFunctionInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hideme_auth_log_function_invocations_total",
			Help: "Total number of password reset logging function invocations by result",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one served HTTP request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPageRender records a rendered page in the given form state
func RecordPageRender(view, state string) {
	pageRendersTotal.WithLabelValues(view, state).Inc()
}

// RecordResetSubmission records the outcome of a reset submission
func RecordResetSubmission(outcome string) {
	resetSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordLogFunctionCall records how long a logging function call took
func RecordLogFunctionCall(duration time.Duration) {
	logFunctionCallDuration.Observe(duration.Seconds())
}

// RecordLogFunctionInvocation records one invocation of the logging function
func RecordLogFunctionInvocation(result string) {
	logFunctionInvocationsTotal.WithLabelValues(result).Inc()
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
