// Package server provides the HTTP server for the JSON API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	planner inbound.PlannerService,
	shopping inbound.ShoppingListService,
	prep inbound.MealPrepService,
) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.router = s.setupRouter(planner, shopping, prep)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter(
	planner inbound.PlannerService,
	shopping inbound.ShoppingListService,
	prep inbound.MealPrepService,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Recoverer(s.logger))
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	h := handlers.NewAPIHandlers(planner, shopping, prep, s.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", h.CreatePlan)
			r.Get("/{id}", h.GetPlan)
			r.Get("/{id}/shopping-list", h.GetShoppingList)
			r.Get("/{id}/prep-plan", h.GetPrepPlan)
			r.Post("/{id}/pin", h.PinPlan)
			r.Delete("/{id}/pin", h.UnpinPlan)

			r.Route("/{id}/meals/{mealID}", func(r chi.Router) {
				r.Post("/envelope", h.ComputeEnvelope)
				r.Post("/swap", h.SwapMeal)
				r.Post("/portion", h.AdjustPortion)
			})
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/current-plan", h.GetCurrentPlan)
			r.Get("/pinned-plans", h.ListPinnedPlans)
		})
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
