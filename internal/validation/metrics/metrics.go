package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation engine.
type Metrics struct {
	// Submission runs by terminal outcome (succeeded, failed, retry_pending)
	SubmissionsValidated *prometheus.CounterVec

	// Claims written back by final status
	ClaimsValidated *prometheus.CounterVec

	// Claims left flagged for retry
	ClaimsFlaggedForRetry prometheus.Counter

	// Full submission validation latency
	ValidationDuration prometheus.Histogram
}

// New creates a Metrics instance with all engine metrics registered.
func New() *Metrics {
	return &Metrics{
		SubmissionsValidated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_validation_submissions_total",
			Help: "Total submission validation runs by outcome",
		}, []string{"outcome"}),

		ClaimsValidated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_validation_claims_total",
			Help: "Total claims written back by final status",
		}, []string{"status"}),

		ClaimsFlaggedForRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "claims_validation_claims_retry_total",
			Help: "Total claims left flagged for retry",
		}),

		ValidationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "claims_validation_duration_seconds",
			Help:    "Duration of full submission validation runs",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// IncrementSubmission records one submission run outcome.
func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.SubmissionsValidated.WithLabelValues(outcome).Inc()
	}
}

// IncrementClaim records one claim write-back by status.
func (m *Metrics) IncrementClaim(status string) {
	if m != nil {
		m.ClaimsValidated.WithLabelValues(status).Inc()
	}
}

// IncrementRetry records one claim left for a future run.
func (m *Metrics) IncrementRetry() {
	if m != nil {
		m.ClaimsFlaggedForRetry.Inc()
	}
}

// ObserveDuration records a full run's latency.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m != nil {
		m.ValidationDuration.Observe(d.Seconds())
	}
}
