package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream weather API metrics
var (
	// UpstreamRequestsTotal tracks every call made to the weather provider
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Total number of requests sent to the weather provider",
		},
		[]string{"provider", "endpoint", "status"},
	)

	// UpstreamRequestDuration tracks the latency of weather provider calls
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_upstream_request_duration_seconds",
			Help:    "Duration of weather provider requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "endpoint"},
	)
)

// Dashboard metrics
var (
	// SearchesTotal tracks completed dashboard searches by source and outcome
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_dashboard_searches_total",
			Help: "Total number of dashboard searches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// SessionsOpen tracks the number of dashboard sessions held by the store
	SessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_dashboard_sessions_open",
			Help: "Number of open dashboard sessions",
		},
	)

	// SessionsSwept tracks sessions evicted for inactivity
	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weather_dashboard_sessions_swept_total",
			Help: "Total number of idle dashboard sessions evicted",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_dashboard_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	AppStartTime.SetToCurrentTime()
}

// RecordUpstreamRequest records one weather provider call. status is zero when no response arrived.
func RecordUpstreamRequest(provider, endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(provider, endpoint, label).Inc()
	UpstreamRequestDuration.WithLabelValues(provider, endpoint).Observe(duration.Seconds())
}

// RecordSearch records the outcome of a dashboard search
func RecordSearch(source, outcome string) {
	if source == "" {
		source = "typed"
	}
	SearchesTotal.WithLabelValues(source, outcome).Inc()
}

func UpdateSessionsOpen(count int) {
	SessionsOpen.Set(float64(count))
}

func RecordSweep(removed int) {
	SessionsSwept.Add(float64(removed))
}
