package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// withRequestTimeout cancels the request context after the configured
// timeout and answers 504 if the handler has not written yet.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.cfg.RequestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.cfg.RequestTimeout)(next)
}
