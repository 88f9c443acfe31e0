package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// DishHandler handles catalog HTTP requests
type DishHandler struct {
	service *service.DishService
	logger  *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.DishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger,
	}
}

// ListDishes handles GET /api/dishes
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dishes, err := h.service.ListDishes(ctx)
	if err != nil {
		h.logger.Error("failed to list dishes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dishes, h.logger)
}

// GetDish handles GET /api/dishes/{dishId}
// An optional ?servings=N query scales the dish figures:
// - 200: successful operation
// - 400: invalid servings value
// - 404: dish not found
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dishID := chi.URLParam(r, "dishId")

	if dishID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	raw := r.URL.Query().Get("servings")
	if raw == "" {
		dish, err := h.service.GetDish(ctx, dishID)
		if err != nil {
			h.respondDishError(w, dishID, err)
			return
		}
		writeJSON(w, http.StatusOK, dish, h.logger)
		return
	}

	servings, err := strconv.Atoi(raw)
	if err != nil || servings < 1 {
		h.logger.Warn("invalid servings value", "dishId", dishID, "servings", raw)
		writeError(w, http.StatusBadRequest, "Servings must be a positive integer", h.logger)
		return
	}

	view, err := h.service.GetDishAtServings(ctx, dishID, servings)
	if err != nil {
		h.respondDishError(w, dishID, err)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// ListMenus handles GET /api/menus
func (h *DishHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	menus, err := h.service.ListMenus(ctx)
	if err != nil {
		h.logger.Error("failed to list menus", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menus, h.logger)
}

func (h *DishHandler) respondDishError(w http.ResponseWriter, dishID string, err error) {
	if errors.Is(err, repository.ErrDishNotFound) {
		h.logger.Info("dish not found", "dishId", dishID)
		writeError(w, http.StatusNotFound, "Dish not found", h.logger)
		return
	}

	h.logger.Error("failed to get dish", "dishId", dishID, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
}
