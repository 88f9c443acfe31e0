package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler handles the triage dashboard endpoints
type AdminHandler struct {
	auth     *service.AuthService
	requests *service.RequestService
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(auth *service.AuthService, requests *service.RequestService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		requests: requests,
		logger:   logger,
	}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateRequestPayload struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Login handles POST /api/admin/login
// - 200: admin session returned
// - 400: missing credentials
// - 401: wrong credentials
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	session, err := h.auth.AdminLogin(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeFailure(w, http.StatusBadRequest, "Username and password are required", h.logger)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.logger.Warn("admin login rejected", "username", req.Username)
			writeFailure(w, http.StatusUnauthorized, "Invalid credentials", h.logger)
		default:
			h.logger.Error("admin login failed", "error", err)
			writeFailure(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("admin logged in", "username", req.Username)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    session.User,
		"token":   session.Token,
	}, h.logger)
}

// ListRequests handles GET /api/admin/batch-cooking-requests
// Returns every request together with the dashboard counters.
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.requests.List(ctx)
	if err != nil {
		h.logger.Error("failed to list requests", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	stats, err := h.requests.Stats(ctx)
	if err != nil {
		h.logger.Error("failed to compute request stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"stats":    stats,
	}, h.logger)
}

// UpdateRequest handles PATCH /api/admin/batch-cooking-requests/{requestId}
// - 200: updated request returned
// - 400: unknown status value
// - 404: request not found
func (h *AdminHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chi.URLParam(r, "requestId")

	var payload updateRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	req, err := h.requests.UpdateStatus(ctx, requestID, payload.Status, payload.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Status must be pending, confirmed or completed", h.logger)
		case errors.Is(err, repository.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "Request not found", h.logger)
		default:
			h.logger.Error("failed to update request", "requestId", requestID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("request updated", "requestId", requestID, "status", req.Status)
	writeJSON(w, http.StatusOK, req, h.logger)
}
