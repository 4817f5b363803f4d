package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/mock"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSettingsSvc(t *testing.T) (ClientSettingsService, *mock.MockPreferencesStorage, *mock.MockConfigAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferencesStorage(ctrl)
	mockAdapter := mock.NewMockConfigAdapter(ctrl)
	return NewClientSettingsService(prefs, mockAdapter, logger.Nop()), prefs, mockAdapter
}

func TestClientSettingsService_LoadLocal(t *testing.T) {
	svc, prefs, _ := newTestSettingsSvc(t)

	prefs.EXPECT().Load(gomock.Any()).Return(models.UISettings{Theme: models.ThemeDark, Port: 9000}, nil)
	assert.Equal(t, models.ThemeDark, svc.LoadLocal(context.Background()).Theme)

	prefs.EXPECT().Load(gomock.Any()).Return(models.UISettings{}, errors.New("corrupt"))
	assert.Equal(t, models.DefaultUISettings(), svc.LoadLocal(context.Background()))
}

func TestClientSettingsService_LoadRemote_SavesLocally(t *testing.T) {
	svc, prefs, mockAdapter := newTestSettingsSvc(t)
	remote := models.UISettings{Theme: models.ThemeLight, Port: 8080}

	gomock.InOrder(
		mockAdapter.EXPECT().GetUISettings(gomock.Any()).Return(remote, nil),
		prefs.EXPECT().Save(gomock.Any(), remote).Return(nil),
	)

	got, err := svc.LoadRemote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, remote, got)
}

func TestClientSettingsService_LoadRemote_Unavailable(t *testing.T) {
	svc, _, mockAdapter := newTestSettingsSvc(t)

	mockAdapter.EXPECT().GetUISettings(gomock.Any()).Return(models.UISettings{}, adapter.ErrServerUnavailable)

	_, err := svc.LoadRemote(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientSettingsService_Save(t *testing.T) {
	svc, prefs, mockAdapter := newTestSettingsSvc(t)
	settings := models.UISettings{Theme: models.ThemeDark, Port: 8081}

	mockAdapter.EXPECT().SaveUISettings(gomock.Any(), settings).Return("ui settings saved", nil)
	prefs.EXPECT().Save(gomock.Any(), settings).Return(nil)

	msg, err := svc.Save(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, "ui settings saved", msg)
}

func TestClientSettingsService_Save_InvalidPortNoRequest(t *testing.T) {
	svc, _, _ := newTestSettingsSvc(t)

	_, err := svc.Save(context.Background(), models.UISettings{Theme: models.ThemeAuto, Port: 22})
	assert.ErrorIs(t, err, validators.ErrUnsafePort)

	_, err = svc.Save(context.Background(), models.UISettings{Theme: models.ThemeAuto, Port: 70000})
	assert.ErrorIs(t, err, validators.ErrInvalidPort)
}
