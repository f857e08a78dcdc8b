// Package server assembles the application: storage, domain services,
// router and middleware chain.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"octomate/internal/domain/audit"
	"octomate/internal/domain/employee"
	"octomate/internal/platform/config"
	"octomate/internal/platform/metrics"
	"octomate/internal/platform/storage"
	"octomate/internal/transport/http/api"
	audithandler "octomate/internal/transport/http/handlers/audit"
	dashboardhandler "octomate/internal/transport/http/handlers/dashboard"
	employeeshandler "octomate/internal/transport/http/handlers/employees"
	sessionhandler "octomate/internal/transport/http/handlers/session"
	"octomate/internal/transport/http/middleware"
)

type App struct {
	Config    config.Config
	Store     *storage.Store
	Employees *employee.Service
	Audit     *audit.Service
	Metrics   *metrics.Collector
	Router    http.Handler
}

// New wires the full application. The caller decides whether to serve;
// tests pass the router to httptest directly.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	employees := employee.NewService(store)
	auditLog := audit.NewService(store)

	if cfg.RunSeed {
		if err := employees.Seed(false); err != nil {
			return nil, fmt.Errorf("seed roster: %w", err)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Session(cfg.SessionSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		sessionhandler.NewHandler(store, cfg.SessionSecret, cfg.SessionTokenTTL).RegisterRoutes(r)
		employeeshandler.NewHandler(employees, auditLog).RegisterRoutes(r)
		audithandler.NewHandler(auditLog).RegisterRoutes(r)
		dashboardhandler.NewHandler(employees, auditLog).RegisterRoutes(r)
	})

	return &App{
		Config:    cfg,
		Store:     store,
		Employees: employees,
		Audit:     auditLog,
		Metrics:   collector,
		Router:    router,
	}, nil
}

// Run serves until the listener fails.
func (a *App) Run() error {
	log.Printf("octomate server listening on %s", a.Config.Addr)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}
