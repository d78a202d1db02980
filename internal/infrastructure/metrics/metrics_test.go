package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/v1/tickets/:id", "GET", 200, 10*time.Millisecond)
	m.ObserveRequest("/api/v1/tickets/:id", "GET", 200, 20*time.Millisecond)
	m.ObserveRequest("", "GET", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/tickets/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveAction("accept", "ok")
	m.ObserveEmail("sent")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `wasteops_workflow_actions_total{action="accept",outcome="ok"} 1`)
	assert.Contains(t, string(body), `wasteops_notification_emails_total{outcome="sent"} 1`)
}
