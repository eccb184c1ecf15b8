package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Logger         zerolog.Logger
	Engine         Engine
	Loans          *LoanHandler
	RateLimiter    *RateLimiter
	AllowedOrigins []string
}

// NewRouter wires the API routes behind request ids, logging, panic
// recovery, CORS and per-client rate limiting.
func NewRouter(cfg RouterConfig) *chi.Mux {
	roiHandler := NewROIHandler(cfg.Engine)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(&cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(RateLimitMiddleware(cfg.RateLimiter))
		}

		r.Post("/roi/calculate", roiHandler.CalculateROI)
		r.Post("/roi/compare", roiHandler.CompareStrategies)
		r.Post("/roi/cash-flow", roiHandler.ProjectCashFlow)
		r.Post("/budget/optimize", roiHandler.OptimizeBudget)
		r.Post("/financing/scenarios", roiHandler.FinancingScenarios)
		r.Get("/projects/{projectID}/roi", roiHandler.AnalyzeProject)

		if cfg.Loans != nil {
			r.Post("/loan/calculate", cfg.Loans.CalculateLoan)
		}
	})

	return r
}
