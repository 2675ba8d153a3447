package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTP("/v1/candidates/:id", "GET", 200, 10*time.Millisecond)
	m.ObserveHTTP("/v1/candidates/:id", "GET", 200, 20*time.Millisecond)
	m.ObserveHTTP("/v1/candidates/:id", "GET", 404, time.Millisecond)
	m.ObserveQuery("exec", time.Millisecond, nil)
	m.ObserveQuery("exec", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/v1/candidates/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/v1/candidates/:id", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryLatency))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("/", "GET", 200, time.Millisecond)
		m.ObserveQuery("exec", time.Millisecond, nil)
	})
}
