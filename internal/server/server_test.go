package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/handler"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/mock"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	require.NoError(t, err)
	return h
}

func freeAddress(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

// ── NewServer ──

func TestNewServer_RequiresHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, ":8000", logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersProvided)
	assert.Nil(t, s)

	s, err = NewServer(&handler.Handlers{}, nil, ":8000", logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersProvided)
	assert.Nil(t, s)
}

func TestNewServer_UsesAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), nil, "127.0.0.1:9123", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9123", s.(*server).httpServer.server.Addr)
}

// ── RunServer ──

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandlers(t), nil, addr, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- s.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s, err := NewServer(newTestHandlers(t), nil, ln.Addr().String(), logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening on")
}

// ── ListenAddress ──

func TestListenAddress(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		stored   models.UISettings
		storeErr error
		callsGet bool
		want     string
	}{
		{name: "configured address wins", cfg: config.Server{HTTPAddress: "127.0.0.1:7000"}, want: "127.0.0.1:7000"},
		{name: "stored port", stored: models.UISettings{Theme: models.ThemeDark, Port: 9090}, callsGet: true, want: ":9090"},
		{name: "storage failure uses default", storeErr: errors.New("locked"), callsGet: true, want: ":8000"},
		{name: "zero port uses default", stored: models.UISettings{}, callsGet: true, want: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settings := mock.NewMockUISettingsService(ctrl)
			if tt.callsGet {
				settings.EXPECT().Get(gomock.Any()).Return(tt.stored, tt.storeErr)
			}

			assert.Equal(t, tt.want, ListenAddress(context.Background(), tt.cfg, settings))
		})
	}
}
