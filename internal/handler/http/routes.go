package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var defaultAllowedOrigins = []string{"*"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	if h.cfg.RateLimit > 0 {
		router.Use(httprate.Limit(
			h.cfg.RateLimit,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				utils.WriteResponse(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			}),
		))
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// health checks and scraping
	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withRequestTimeout)

		r.Get("/api/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/configs", h.listConfigs)
			r.Post("/api/configs", h.createConfig)
			r.Post("/api/configs/{name}", h.updateConfig)
			r.Delete("/api/configs/{name}", h.deleteConfig)
			r.Get("/api/configs/{name}/uiinfo", h.getUIInfo)

			r.Get("/api/ui_settings", h.getUISettings)
			r.Post("/api/ui_settings", h.saveUISettings)
		})
	})

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           600,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteResponse(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteResponse(w, app.MsgNotFound, http.StatusNotFound)
}
