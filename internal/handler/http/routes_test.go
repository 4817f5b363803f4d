package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersAPIRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/configs"},
		{http.MethodPost, "/api/configs"},
		{http.MethodPost, "/api/configs/bot-1"},
		{http.MethodDelete, "/api/configs/bot-1"},
		{http.MethodGet, "/api/configs/bot-1/uiinfo"},
		{http.MethodGet, "/api/ui_settings"},
		{http.MethodPost, "/api/ui_settings"},
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/readyz"},
		{http.MethodGet, "/metrics"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			assert.True(t, router.Match(rctx, rt.method, rt.path), "route is not registered")
		})
	}
}

func TestInit_UnknownPathIsJSON404(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	rr := serve(router, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgNotFound, resp.Msg)
}

func TestInit_WrongMethodIsJSON405(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/configs"},
		{http.MethodGet, "/api/configs/bot-1"},
		{http.MethodPatch, "/api/ui_settings"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, app.MsgMethodNotAllowed, resp.Msg)
		})
	}
}

// ── health checks ──

func TestHealthz(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	rr := serve(router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name       string
		readyErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "storage reachable", wantStatus: http.StatusOK, wantBody: "ready"},
		{name: "storage down", readyErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantBody: "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks, _ := newTestRouter(t, config.Server{})
			mocks.health.EXPECT().Ready(gomock.Any()).Return(tt.readyErr)

			rr := serve(router, http.MethodGet, "/readyz", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestMetrics_ExposesRequestCounters(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	serve(router, http.MethodGet, "/healthz", "")
	rr := serve(router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `config_sets_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestMetrics_CountsMutations(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	disableAuth(mocks)
	mocks.configs.EXPECT().Delete(gomock.Any(), "bot-1").Return(nil)

	serve(router, http.MethodDelete, "/api/configs/bot-1", "")
	rr := serve(router, http.MethodGet, "/metrics", "")

	assert.Contains(t, rr.Body.String(), `config_sets_mutations_total{operation="delete_config"} 1`)
}

// ── CORS and rate limiting ──

func TestCORS_Preflight(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{AllowedOrigins: []string{"http://panel.local"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/configs", nil)
	req.Header.Set("Origin", "http://panel.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://panel.local", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_DefaultAllowsAnyOrigin(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionInfo{Version: "1.0.0"})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Origin", "http://elsewhere.local")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_RejectsAboveLimit(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{RateLimit: 2})

	for i := 0; i < 2; i++ {
		rr := serve(router, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := serve(router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	router, _, _ := newTestRouter(t, config.Server{})

	for i := 0; i < 20; i++ {
		rr := serve(router, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rr.Code)
	}
}
