package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// DefaultRegistry holds the client's collectors, kept off the global
// prometheus registry so embedding applications can expose or ignore
// them as they see fit.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		RequestDuration, RequestsTotal,
		RateLimitWaitSeconds,
	)
}

// RequestDuration measures each HTTP exchange in seconds.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "silverdiamond_request_duration_seconds",
		Help:    "Duration of Silver Diamond API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// RequestsTotal counts finished requests by endpoint and outcome.
var RequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "silverdiamond_requests_total",
		Help: "Silver Diamond API requests by outcome.",
	},
	[]string{"endpoint", "outcome"}, // ok | remote_error | transport_error | unexpected_response
)

// RateLimitWaitSeconds measures time spent waiting on the client-side
// rate limiter, recorded only for waits above the noise floor.
var RateLimitWaitSeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "silverdiamond_ratelimit_wait_seconds",
		Help:    "Time spent waiting for the client rate limiter in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// WritePrometheus writes all collected metrics to w in the Prometheus
// text exposition format.
func WritePrometheus(w io.Writer) error {
	metrics, err := DefaultRegistry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range metrics {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
