// Package sessionhandler issues the demo session. There is no
// authentication: picking a role signs a token for that role's built-in
// user, and the choice is persisted so the next start restores it.
package sessionhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"octomate/internal/domain/rbac"
	"octomate/internal/platform/storage"
	"octomate/internal/transport/http/api"
	"octomate/internal/transport/http/middleware"
)

// RoleStorageKey persists the last selected role across restarts.
const RoleStorageKey = "octomate_user_role"

type Handler struct {
	Store    *storage.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *storage.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/session", h.handleGetSession)
	r.Post("/session", h.handleSelectRole)
	r.Get("/me", h.handleMe)
}

type sessionResponse struct {
	Token string    `json:"token"`
	User  rbac.User `json:"user"`
}

func (h *Handler) handleSelectRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", reqID)
		return
	}

	role, ok := rbac.ParseRole(payload.Role)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "unknown_role", "unknown role", reqID)
		return
	}
	user, ok := rbac.UserForRole(role)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "unknown_role", "unknown role", reqID)
		return
	}

	token, err := rbac.GenerateToken(h.Secret, user, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue session token", reqID)
		return
	}

	if err := h.Store.Put(RoleStorageKey, role); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to persist role selection", reqID)
		return
	}

	api.Success(w, sessionResponse{Token: token, User: user}, reqID)
}

// handleGetSession reports the persisted role selection so a fresh
// client can resume where the last one left off. An absent or
// unreadable selection falls back to the employee role, never an error.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	role := rbac.RoleEmployee
	var stored rbac.Role
	err := h.Store.Get(RoleStorageKey, &stored)
	switch {
	case err == nil:
		if parsed, ok := rbac.ParseRole(string(stored)); ok {
			role = parsed
		}
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
	default:
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to read role selection", reqID)
		return
	}

	api.Success(w, map[string]any{
		"role":  role,
		"roles": rbac.Roles,
	}, reqID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	api.Success(w, map[string]any{
		"user":        user,
		"roleDisplay": user.Role.DisplayName(),
	}, reqID)
}
