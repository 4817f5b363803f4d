// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/utils"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/go-chi/chi/v5"
)

// listConfigs handles GET /api/configs and returns every config set keyed
// by name. An empty store yields {}.
func (h *Handler) listConfigs(w http.ResponseWriter, r *http.Request) {
	sets, err := h.services.ConfigSetService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sets == nil {
		sets = models.ConfigSets{}
	}

	utils.WriteJSON(w, sets, http.StatusOK)
}

// createConfig handles POST /api/configs.
//
// Request body:
//
//	{"name": "bot-1", "config": {"serial_number": "7", ...}}
//
// The absolute serial number in the body is ignored. Responds 201 on
// success, 400 on malformed or invalid input and 409 when the name, serial
// number or nickname is already taken.
func (h *Handler) createConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Info().Err(err).Msg("invalid create config body")
		utils.WriteResponse(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if _, err := h.services.ConfigSetService.Create(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.mutation("create_config")
	utils.WriteResponse(w, app.MsgConfigCreated, http.StatusCreated)
}

// updateConfig handles POST /api/configs/{name}. Only the keys present in
// the body are changed.
func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := configName(r)

	var update models.ConfigUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Info().Err(err).Str("config", name).Msg("invalid update config body")
		utils.WriteResponse(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ConfigSetService.Update(r.Context(), name, update); err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.mutation("update_config")
	utils.WriteResponse(w, app.MsgConfigUpdated, http.StatusOK)
}

// deleteConfig handles DELETE /api/configs/{name}.
func (h *Handler) deleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ConfigSetService.Delete(r.Context(), configName(r)); err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.mutation("delete_config")
	utils.WriteResponse(w, app.MsgConfigDeleted, http.StatusOK)
}

// getUIInfo handles GET /api/configs/{name}/uiinfo. Unknown names are not
// an error, they are simply not editable.
func (h *Handler) getUIInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.ConfigSetService.UIInfo(r.Context(), configName(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// configName returns the {name} path segment. chi matches on the raw path
// when the request carries escapes such as %2F, so those are decoded here.
func configName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}
