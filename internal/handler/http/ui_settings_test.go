package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetUISettings(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	disableAuth(mocks)
	mocks.settings.EXPECT().Get(gomock.Any()).Return(models.UISettings{Theme: models.ThemeDark, Port: 9000}, nil)

	rr := serve(router, http.MethodGet, "/api/ui_settings", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.UISettings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.UISettings{Theme: models.ThemeDark, Port: 9000}, got)
}

func TestGetUISettings_Failure(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	disableAuth(mocks)
	mocks.settings.EXPECT().Get(gomock.Any()).Return(models.UISettings{}, errors.New("db closed"))

	rr := serve(router, http.MethodGet, "/api/ui_settings", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSaveUISettings_PartialUpdate(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	disableAuth(mocks)

	mocks.settings.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.UISettingsUpdate) (models.UISettings, error) {
			require.NotNil(t, u.Theme)
			assert.Equal(t, models.ThemeLight, *u.Theme)
			assert.Nil(t, u.Port)
			return models.UISettings{Theme: models.ThemeLight, Port: 8000}, nil
		})

	rr := serve(router, http.MethodPost, "/api/ui_settings", `{"theme":"light"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgUISettingsSaved, resp.Msg)
}

func TestSaveUISettings_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "bad theme", body: `{"theme":"neon"}`, serviceErr: validators.ErrInvalidTheme, wantStatus: http.StatusBadRequest, wantMsg: validators.ErrInvalidTheme.Error()},
		{name: "port out of range", body: `{"port":70000}`, serviceErr: validators.ErrInvalidPort, wantStatus: http.StatusBadRequest, wantMsg: validators.ErrInvalidPort.Error()},
		{name: "unsafe port", body: `{"port":6000}`, serviceErr: validators.ErrUnsafePort, wantStatus: http.StatusBadRequest, wantMsg: validators.ErrUnsafePort.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks, _ := newTestRouter(t, config.Server{})
			disableAuth(mocks)
			mocks.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.UISettings{}, tt.serviceErr)

			rr := serve(router, http.MethodPost, "/api/ui_settings", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rr).Msg)
		})
	}
}

func TestSaveUISettings_PortAsString(t *testing.T) {
	router, mocks, _ := newTestRouter(t, config.Server{})
	disableAuth(mocks)

	rr := serve(router, http.MethodPost, "/api/ui_settings", `{"port":"8000"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeEnvelope(t, rr).Msg)
}
