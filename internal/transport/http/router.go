package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rkcli/internal/config"
	custommw "rkcli/internal/middleware"
)

// NewRouter builds the HTTP router with the standard middleware chain:
// request-id first, then structured logging, panic recovery and rate
// limiting, followed by the API routes, health and Prometheus metrics.
func NewRouter(cfg *config.Config, service StatsService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(logger))
	r.Use(custommw.Recoverer(logger))
	if cfg.Server.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
		r.Use(limiter.Handler)
	}

	statsHandler := NewStatsHandler(service, cfg.Paths.ExportsDir, logger)
	healthHandler := NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/version", healthHandler.Version)
	})
	r.Get("/healthz", healthHandler.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
