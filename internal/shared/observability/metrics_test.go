package observability

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(prometheus.NewRegistry())
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveRequest("/api/dashboard/overview", "GET", 200, 15*time.Millisecond)
	m.ObserveRequest("/api/dashboard/overview", "GET", 200, 5*time.Millisecond)
	m.ObserveRequest("/api/export/:table", "GET", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/dashboard/overview", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/export/:table", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDurationSeconds))
}

func TestMetrics_SetRealtime(t *testing.T) {
	m := newTestMetrics(t)

	m.SetRealtime(1247, 3421)
	assert.Equal(t, 1247.0, testutil.ToFloat64(m.RealtimeEvents))
	assert.Equal(t, 3421.0, testutil.ToFloat64(m.RealtimeActiveUsers))

	m.SetRealtime(1290, 3418)
	assert.Equal(t, 1290.0, testutil.ToFloat64(m.RealtimeEvents))
}

func TestMetrics_IncExport(t *testing.T) {
	m := newTestMetrics(t)

	m.IncExport("cohorts", "excel")
	m.IncExport("cohorts", "excel")
	m.IncExport("funnel", "csv")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("cohorts", "excel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("funnel", "csv")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/", "GET", 200, time.Millisecond)
		m.SetRealtime(1, 1)
		m.IncExport("cohorts", "pdf")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics(t)
	m.SetRealtime(1247, 3421)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "insight_realtime_events 1247")
	assert.Contains(t, string(body), "insight_realtime_active_users 3421")
}
