package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ayto/budgetledger/internal/adapter/http/handler"
	"github.com/ayto/budgetledger/internal/adapter/http/middleware"
	"github.com/ayto/budgetledger/internal/infrastructure/metrics"
	"github.com/ayto/budgetledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ModificationHandler *handler.ModificationHandler
	BudgetHandler       *handler.BudgetHandler
	HealthHandler       *handler.HealthHandler
	Auth                *middleware.Auth
	IdempotencyStore    usecase.IdempotencyStore
	Metrics             *metrics.Metrics
	RateLimit           *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth != nil {
			r.Use(cfg.Auth.Wrap)
		}

		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Budgets
		r.Route("/budgets", func(r chi.Router) {
			r.Get("/{id}", cfg.BudgetHandler.Get)
			r.Get("/{id}/stats", cfg.BudgetHandler.Stats)
			r.Get("/{id}/consistency", cfg.BudgetHandler.Consistency)
			r.Get("/{id}/modifications", cfg.ModificationHandler.ListByBudget)
			r.Post("/{id}/modifications", cfg.ModificationHandler.Create)
		})

		// Modifications
		r.Route("/modifications", func(r chi.Router) {
			r.Get("/{id}", cfg.ModificationHandler.Get)
			r.Get("/{id}/audit", cfg.ModificationHandler.AuditTrail)
			r.Post("/{id}/approve", cfg.ModificationHandler.Approve)
			r.Post("/{id}/reject", cfg.ModificationHandler.Reject)
		})
	})

	return r
}
