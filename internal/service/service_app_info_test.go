package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("0.1.0", "2026-01-01", "abc123")

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())
	assert.Equal(t, models.VersionInfo{Version: "1.0.0", Date: "2026-01-01", Commit: "abc123"}, got)
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("0.1.0", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", svc.GetAppVersion(context.Background()).Version)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// AuthService
// ─────────────────────────────────────────────

func TestAuthService_Disabled(t *testing.T) {
	svc := NewAuthService(config.App{}, logger.Nop())

	assert.False(t, svc.Enabled())
	_, err := svc.CreateToken(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrAuthDisabled)
	_, err = svc.ParseToken(context.Background(), "whatever")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc := NewAuthService(config.App{
		TokenSignKey:  "secret",
		TokenIssuer:   "config-sets",
		TokenDuration: time.Hour,
	}, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Subject())

	_, err = svc.ParseToken(ctx, token.String()+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingIssuer(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: "secret", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
