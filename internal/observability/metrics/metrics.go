package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_registrations_total",
		Help: "Count of successful account registrations by role",
	}, []string{"role"})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_logins_total",
		Help: "Count of login attempts by result",
	}, []string{"result"})

	jobsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_jobs_created_total",
		Help: "Count of job postings created",
	})

	applicationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_applications_submitted_total",
		Help: "Count of applications submitted",
	})

	applicationStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_application_status_changes_total",
		Help: "Count of application status transitions by new status",
	}, []string{"status"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordRegistration increments the registration counter for a role.
func RecordRegistration(role string) {
	registrationsTotal.WithLabelValues(role).Inc()
}

// RecordLogin increments the login counter with result "ok" or "failed".
func RecordLogin(result string) {
	loginsTotal.WithLabelValues(result).Inc()
}

// RecordJobCreated increments the job creation counter.
func RecordJobCreated() {
	jobsCreatedTotal.Inc()
}

// RecordApplicationSubmitted increments the application counter.
func RecordApplicationSubmitted() {
	applicationsTotal.Inc()
}

// RecordStatusChange increments the status transition counter.
func RecordStatusChange(status string) {
	applicationStatusTotal.WithLabelValues(status).Inc()
}
