package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-sets/internal/logger"
)

// healthz reports that the process is up.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// readyz reports whether the storage backend answers.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if err := h.services.HealthService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("not ready")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not ready"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}
