package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := New()

	r.ToolSucceeded("shopee_ads_report", 120)
	r.ToolSucceeded("shopee_ads_report", 80)
	r.ToolFailed("shopee_ads_report", "VAL_004")
	r.ObserveRequest(http.MethodPost, "/v1/shopee/ads-report", http.StatusOK, 300*time.Millisecond)
	r.SetSessions(3)
	r.SessionsPurged(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.toolRuns.WithLabelValues("shopee_ads_report", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.toolRuns.WithLabelValues("shopee_ads_report", "VAL_004")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues(http.MethodPost, "/v1/shopee/ads-report", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessionsPurged))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ads_excel_tool_runs_total")
	assert.Contains(t, rec.Body.String(), "ads_excel_sessions_active 3")
}
