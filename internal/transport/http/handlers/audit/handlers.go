// Package audithandler serves the audit trail page. The trail is HR
// admin only; other roles get a denial, not an empty list.
package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"octomate/internal/domain/audit"
	"octomate/internal/domain/rbac"
	"octomate/internal/transport/http/api"
	"octomate/internal/transport/http/middleware"
	"octomate/internal/transport/http/shared"
)

type Handler struct {
	Audit *audit.Service
}

func NewHandler(auditLog *audit.Service) *Handler {
	return &Handler{Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/audit-logs", h.handleList)
}

type listedEntry struct {
	audit.Entry
	Delta string `json:"delta,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}
	if !rbac.CanViewAuditLogs(user.Role) {
		api.Fail(w, http.StatusForbidden, "access_denied", "only HR administrators can view audit logs", reqID)
		return
	}

	query := r.URL.Query()
	filter := audit.Filter{
		Search:     query.Get("search"),
		Action:     audit.Action(query.Get("action")),
		EmployeeID: query.Get("employeeId"),
	}
	page := shared.ParsePagination(r, 50, 200)

	entries, total, err := h.Audit.List(filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list audit entries", reqID)
		return
	}

	withDelta := query.Get("delta") == "true"
	listed := make([]listedEntry, 0, len(entries))
	for _, entry := range entries {
		item := listedEntry{Entry: entry}
		if withDelta {
			item.Delta = audit.Delta(entry)
		}
		listed = append(listed, item)
	}

	api.Success(w, map[string]any{
		"entries": listed,
		"total":   total,
		"limit":   page.Limit,
		"offset":  page.Offset,
	}, reqID)
}
