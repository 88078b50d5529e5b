package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons for BookingsRejected.
const (
	ReasonCapacity  = "capacity"
	ReasonDuplicate = "duplicate"
	ReasonNotFound  = "class_not_found"
)

var (
	BookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dance", Name: "bookings_created_total", Help: "Confirmed bookings created",
	})
	BookingsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dance", Name: "bookings_rejected_total", Help: "Booking attempts rejected by the seat allocator",
	}, []string{"reason"})
	BookingsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dance", Name: "bookings_cancelled_total", Help: "Bookings moved to cancelled",
	})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dance", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(BookingsCreated, BookingsRejected, BookingsCancelled, HTTPDuration)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveHTTP(method, route string, status int, d time.Duration) {
	HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
