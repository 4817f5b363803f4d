package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/mock"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Test fixtures ──

type testServices struct {
	configs  *mock.MockConfigSetService
	settings *mock.MockUISettingsService
	appInfo  *mock.MockAppInfoService
	auth     *mock.MockAuthService
	health   *mock.MockHealthService
}

func newTestServices(t *testing.T) (*testServices, *service.Services) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		configs:  mock.NewMockConfigSetService(ctrl),
		settings: mock.NewMockUISettingsService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		health:   mock.NewMockHealthService(ctrl),
	}

	return mocks, &service.Services{
		ConfigSetService:  mocks.configs,
		UISettingsService: mocks.settings,
		AppInfoService:    mocks.appInfo,
		AuthService:       mocks.auth,
		HealthService:     mocks.health,
	}
}

// newTestRouter builds the full router with auth disabled and no rate
// limit unless cfg says otherwise.
func newTestRouter(t *testing.T, cfg config.Server) (*chi.Mux, *testServices, *Handler) {
	t.Helper()

	mocks, services := newTestServices(t)
	h := NewHandler(services, cfg, logger.Nop())
	return h.Init(), mocks, h
}

func disableAuth(m *testServices) {
	m.auth.EXPECT().Enabled().Return(false).AnyTimes()
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

// ── NewHandler ──

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.Services{}
	cfg := config.Server{RateLimit: 5}
	log := logger.Nop()

	h := NewHandler(services, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentMetricRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}
