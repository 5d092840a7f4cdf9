package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_requests_total",
			Help: "Total number of tracker requests",
		},
		[]string{"method", "path"},
	)

	TrackerRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_requests_in_flight",
			Help: "Number of tracker requests currently being processed",
		},
	)

	TrackerRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_request_duration_seconds",
			Help:    "Duration of tracker requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created",
		},
	)

	ExercisesLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_logged_total",
			Help: "Total number of exercises logged",
		},
	)

	LogQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "log_queries_total",
			Help: "Total number of exercise log queries served",
		},
	)
)
