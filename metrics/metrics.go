package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	signupsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_signups_received_total",
			Help: "Total number of valid signups accepted for submission",
		},
		[]string{"role"},
	)

	// The "simulated" outcome is the machine-checkable trace of degraded
	// success: the user saw the success panel but nothing was transmitted.
	deliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_signup_deliveries_total",
			Help: "Total number of resolved submissions by delivery outcome",
		},
		[]string{"outcome"},
	)

	intakeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "waitlist_intake_request_duration_seconds",
			Help:    "Outbound form-intake request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"outcome"},
	)
)

// RecordSignupReceived records a signup that passed validation.
func RecordSignupReceived(role string) {
	signupsReceivedTotal.WithLabelValues(role).Inc()
}

// RecordDelivery records a resolved submission and how long the outbound
// call took.
func RecordDelivery(outcome string, duration time.Duration) {
	deliveriesTotal.WithLabelValues(outcome).Inc()
	intakeRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Handler exposes the prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
