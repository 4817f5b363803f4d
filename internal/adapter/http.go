package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/utils"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/go-resty/resty/v2"
)

const (
	configsPath    = "/api/configs"
	uiSettingsPath = "/api/ui_settings"
)

type httpConfigAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConfigAdapter constructs the REST implementation of
// [ConfigAdapter]. adapterCfg.HTTPAddress may be "host:port" or a full URL.
func NewHTTPConfigAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConfigAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.Token)

	return &httpConfigAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpConfigAdapter) ListConfigs(ctx context.Context) (models.ConfigSets, error) {
	resp, err := h.client.R().SetContext(ctx).Get(configsPath)
	if err != nil {
		return nil, h.transportError("list configs", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	sets := make(models.ConfigSets)
	if err = decode(resp, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (h *httpConfigAdapter) CreateConfig(ctx context.Context, req models.CreateConfigRequest) (string, error) {
	resp, err := h.jsonRequest(ctx, req).Post(configsPath)
	if err != nil {
		return "", h.transportError("create config", err)
	}
	return envelopeMessage(resp)
}

func (h *httpConfigAdapter) UpdateConfig(ctx context.Context, name string, update models.ConfigUpdate) (string, error) {
	resp, err := h.jsonRequest(ctx, update).Post(configPath(name))
	if err != nil {
		return "", h.transportError("update config", err)
	}
	return envelopeMessage(resp)
}

func (h *httpConfigAdapter) DeleteConfig(ctx context.Context, name string) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Delete(configPath(name))
	if err != nil {
		return "", h.transportError("delete config", err)
	}
	return envelopeMessage(resp)
}

func (h *httpConfigAdapter) GetUIInfo(ctx context.Context, name string) (models.UIInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get(configPath(name) + "/uiinfo")
	if err != nil {
		return models.UIInfo{}, h.transportError("get ui info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UIInfo{}, err
	}

	var info models.UIInfo
	if err = decode(resp, &info); err != nil {
		return models.UIInfo{}, err
	}
	return info, nil
}

func (h *httpConfigAdapter) GetUISettings(ctx context.Context) (models.UISettings, error) {
	resp, err := h.client.R().SetContext(ctx).Get(uiSettingsPath)
	if err != nil {
		return models.UISettings{}, h.transportError("get ui settings", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UISettings{}, err
	}

	settings := models.DefaultUISettings()
	if err = decode(resp, &settings); err != nil {
		return models.UISettings{}, err
	}
	return settings, nil
}

func (h *httpConfigAdapter) SaveUISettings(ctx context.Context, settings models.UISettings) (string, error) {
	resp, err := h.jsonRequest(ctx, settings).Post(uiSettingsPath)
	if err != nil {
		return "", h.transportError("save ui settings", err)
	}
	return envelopeMessage(resp)
}

func (h *httpConfigAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (h *httpConfigAdapter) transportError(op string, err error) error {
	h.logger.Err(err).Str("op", op).Msg("request to config-sets API failed")
	return fmt.Errorf("%s: %w: %w", op, ErrServerUnavailable, err)
}

func configPath(name string) string {
	return configsPath + "/" + url.PathEscape(name)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

// envelopeMessage returns the msg of a mutation response. A 2xx response
// whose envelope carries "success": false is a rejection too. An empty body
// or an envelope without the field counts as success.
func envelopeMessage(resp *resty.Response) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return "", nil
	}

	var envelope struct {
		Success *bool  `json:"success"`
		Msg     string `json:"msg"`
	}
	if err := decode(resp, &envelope); err != nil {
		return "", err
	}
	if envelope.Success != nil && !*envelope.Success {
		return "", &APIError{StatusCode: resp.StatusCode(), Msg: envelope.Msg, Err: ErrRejected}
	}
	return envelope.Msg, nil
}
