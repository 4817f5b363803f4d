package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/utils"
	"github.com/MKhiriev/go-config-sets/models"
)

func (h *Handler) getUISettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.UISettingsService.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

// saveUISettings merges the fields present in the body into the stored
// settings. A changed port takes effect on the next server start.
func (h *Handler) saveUISettings(w http.ResponseWriter, r *http.Request) {
	var update models.UISettingsUpdate
	if err := decodeJSON(r, &update); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid ui settings body")
		utils.WriteResponse(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if _, err := h.services.UISettingsService.Save(r.Context(), update); err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.mutation("save_ui_settings")
	utils.WriteResponse(w, app.MsgUISettingsSaved, http.StatusOK)
}
