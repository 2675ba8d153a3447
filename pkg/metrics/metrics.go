package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. Methods are nil-safe so
// components can be built without metrics in tests.
type Metrics struct {
	// HTTP requests by route template, method and status code
	HTTPRequests *prometheus.CounterVec

	// HTTP handling latency by route template and method
	HTTPLatency *prometheus.HistogramVec

	// Store statement latency by operation and outcome
	QueryLatency *prometheus.HistogramVec
}

// New registers all collectors against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "candidate_service_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "candidate_service_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method"}),

		QueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "candidate_service_db_query_duration_seconds",
			Help:    "Duration of database statements by operation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op", "outcome"}), // outcome: "ok", "error"
	}
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveQuery implements database.QueryObserver.
func (m *Metrics) ObserveQuery(op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.QueryLatency.WithLabelValues(op, outcome).Observe(d.Seconds())
}
