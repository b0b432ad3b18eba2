package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-excel-utilities/infrastructure/session"
	"github.com/vfg2006/ads-excel-utilities/internal/config"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/coloring"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/comparing"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/highlighting"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/naming"
	"github.com/vfg2006/ads-excel-utilities/internal/usecases/reporting"
	"github.com/vfg2006/ads-excel-utilities/pkg/metrics"
)

func newTestServer(t *testing.T) (*Server, *session.Store) {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Upload: config.Upload{MaxBytes: 1 << 20},
		Session: config.Session{
			CookieName:    "ads_session",
			TTL:           time.Hour,
			SnapshotLimit: 14,
		},
		Cors:      config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		SecretKey: "test-secret",
	}

	services := Services{
		Shopee: reporting.NewService(naming.NewShortener(naming.DefaultVocabulary())),
		Meta:   highlighting.NewService(),
		TikTok: coloring.NewService(),
		Daily:  comparing.NewService(),
	}

	sessions := session.NewStore(cfg.Session.SnapshotLimit)
	tokens := session.NewTokens(cfg.SecretKey, cfg.Session.TTL)

	srv, err := New(cfg, services, sessions, tokens, metrics.New())
	require.NoError(t, err)

	return srv, sessions
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL_007"`)
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shopee/ads-report", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL_008"`)
	})

	t.Run("métricas usam o padrão da rota", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `ads_excel_http_requests_total{method="GET",path="/healthcheck",status_code="200"} 1`)
		assert.NotContains(t, rec.Body.String(), `path="/v1/nada"`)
	})
}

func TestServer_DailySession(t *testing.T) {
	srv, sessions := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tiktok/daily/snapshots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"snapshots":[]}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ads_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 1, sessions.Len())

	// o mesmo cookie reaproveita a sessão
	req := httptest.NewRequest(http.MethodGet, "/v1/tiktok/daily/compare", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SES_002"`)
	assert.Equal(t, 1, sessions.Len())
}
