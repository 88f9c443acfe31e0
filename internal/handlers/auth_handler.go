package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batcheasycook/batchcook-api/internal/middleware"
	"github.com/batcheasycook/batchcook-api/internal/service"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
// - 201: account created, session returned
// - 400: missing contact fields or weak password
// - 409: email already registered
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	session, err := h.service.Register(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingContact):
			writeFailure(w, http.StatusBadRequest, "Email, password, name and phone are required", h.logger)
		case errors.Is(err, service.ErrWeakPassword):
			writeFailure(w, http.StatusBadRequest, "Password must be at least 6 characters", h.logger)
		case errors.Is(err, service.ErrEmailTaken):
			writeFailure(w, http.StatusConflict, "Email is already registered", h.logger)
		default:
			h.logger.Error("failed to register user", "error", err)
			writeFailure(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("user registered", "userId", session.User.ID, "email", session.User.Email)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    session.User,
		"token":   session.Token,
	}, h.logger)
}

// Login handles POST /api/auth/login
// - 200: session returned
// - 400: missing credentials
// - 401: unknown email or wrong password
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeFailure(w, http.StatusBadRequest, "Email and password are required", h.logger)
		case errors.Is(err, service.ErrInvalidCredentials):
			writeFailure(w, http.StatusUnauthorized, "Invalid email or password", h.logger)
		default:
			h.logger.Error("failed to log in user", "error", err)
			writeFailure(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    session.User,
		"token":   session.Token,
	}, h.logger)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
		return
	}

	user, err := h.service.Profile(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
			return
		}
		h.logger.Error("failed to load profile", "userId", claims.Subject, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	}, h.logger)
}
