// Package dashboardhandler serves the landing page aggregates.
package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"octomate/internal/domain/audit"
	"octomate/internal/domain/employee"
	"octomate/internal/transport/http/api"
	"octomate/internal/transport/http/middleware"
)

type Handler struct {
	Employees *employee.Service
	Audit     *audit.Service
}

func NewHandler(employees *employee.Service, auditLog *audit.Service) *Handler {
	return &Handler{Employees: employees, Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	stats, err := h.Employees.Stats()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to compute dashboard stats", reqID)
		return
	}

	// Recent changes is capped at the ten newest audit entries, the
	// same window the dashboard card shows.
	_, total, err := h.Audit.List(audit.Filter{}, 0, 0)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to read audit trail", reqID)
		return
	}
	stats.RecentChanges = total
	if stats.RecentChanges > 10 {
		stats.RecentChanges = 10
	}

	api.Success(w, stats, reqID)
}
