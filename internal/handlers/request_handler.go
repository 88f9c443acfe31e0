package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batcheasycook/batchcook-api/internal/middleware"
	"github.com/batcheasycook/batchcook-api/internal/models"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// RequestHandler handles batch cooking request HTTP endpoints
type RequestHandler struct {
	requests *service.RequestService
	auth     *service.AuthService
	logger   *slog.Logger
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requests *service.RequestService, auth *service.AuthService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		requests: requests,
		auth:     auth,
		logger:   logger,
	}
}

// Submit handles POST /api/batch-cooking-requests
// Anonymous submission with contact details in the payload:
// - 201: request recorded
// - 400: missing fields or malformed cart
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input models.BatchCookingRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request payload", "error", err)
		writeFailure(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	req, err := h.requests.Submit(ctx, input)
	if err != nil {
		h.respondSubmitError(w, err)
		return
	}

	h.logger.Info("batch cooking request recorded", "requestId", req.ID, "email", req.Email)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"requestId": req.ID,
		"message":   "Batch cooking request recorded",
	}, h.logger)
}

// List handles GET /api/batch-cooking-requests
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.requests.List(ctx)
	if err != nil {
		h.logger.Error("failed to list requests", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, requests, h.logger)
}

// Get handles GET /api/batch-cooking-requests/{requestId}
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chi.URLParam(r, "requestId")

	req, err := h.requests.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			h.logger.Info("request not found", "requestId", requestID)
			writeError(w, http.StatusNotFound, "Request not found", h.logger)
			return
		}
		h.logger.Error("failed to get request", "requestId", requestID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, req, h.logger)
}

// SubmitForUser handles POST /api/user/batch-cooking-requests
// The account's contact details override whatever the payload carries.
func (h *RequestHandler) SubmitForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
		return
	}

	user, err := h.auth.GetUser(ctx, claims.Subject)
	if err != nil {
		h.logger.Warn("token subject no longer exists", "userId", claims.Subject)
		writeError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
		return
	}

	var input models.BatchCookingRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request payload", "error", err)
		writeFailure(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	req, err := h.requests.SubmitForUser(ctx, input, user)
	if err != nil {
		h.respondSubmitError(w, err)
		return
	}

	h.logger.Info("batch cooking request recorded", "requestId", req.ID, "userId", user.ID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"requestId": req.ID,
		"message":   "Batch cooking request recorded",
	}, h.logger)
}

// ListForUser handles GET /api/user/batch-cooking-requests
func (h *RequestHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
		return
	}

	requests, err := h.requests.ListForUser(ctx, claims.Subject)
	if err != nil {
		h.logger.Error("failed to list user requests", "userId", claims.Subject, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, requests, h.logger)
}

func (h *RequestHandler) respondSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeFailure(w, http.StatusBadRequest, "Name, email and a non-empty cart are required", h.logger)
	case errors.Is(err, service.ErrInvalidPayload):
		writeFailure(w, http.StatusBadRequest, "Invalid request payload", h.logger)
	default:
		h.logger.Error("failed to record request", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
