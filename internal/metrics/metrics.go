package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by tier, endpoint and status code.",
		},
		[]string{"tier", "endpoint", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted into WAITING state.",
		},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_decisions_total",
			Help:      "Owner decisions on waiting bookings.",
		},
		[]string{"outcome"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "gateway_rate_limited_total",
			Help:      "Requests rejected by the gateway rate limiter.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingDecisions, rateLimited)
	})
}

// IncHTTP increments the request counter for an endpoint/status pair.
func IncHTTP(tier, endpoint, status string) {
	httpRequests.WithLabelValues(tier, endpoint, status).Inc()
}

// IncBookingCreated counts a successfully created booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingDecision counts an approve/reject outcome ("approved" or "rejected").
func IncBookingDecision(outcome string) {
	bookingDecisions.WithLabelValues(outcome).Inc()
}

// IncRateLimited counts a request dropped by the gateway limiter.
func IncRateLimited() {
	rateLimited.Inc()
}
