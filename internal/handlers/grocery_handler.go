package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/batcheasycook/batchcook-api/internal/grocery"
)

// GroceryHandler pushes a shopping list to the partner store
type GroceryHandler struct {
	client *grocery.Client
	logger *slog.Logger
}

// NewGroceryHandler creates a new grocery handler
func NewGroceryHandler(client *grocery.Client, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{
		client: client,
		logger: logger,
	}
}

type syncRequest struct {
	Ingredients []string `json:"ingredients"`
}

// Sync handles POST /api/grocery/sync
// - 200: sync result, real or local fallback
// - 400: empty ingredient list
func (h *GroceryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if len(req.Ingredients) == 0 {
		writeError(w, http.StatusBadRequest, "Ingredients are required", h.logger)
		return
	}

	result, err := h.client.SynchronizeCart(ctx, req.Ingredients)
	if err != nil {
		h.logger.Error("failed to synchronize cart", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("grocery cart synchronized",
		"success", result.Success,
		"fallback", result.Fallback,
		"addedItems", result.AddedItems,
	)
	writeJSON(w, http.StatusOK, result, h.logger)
}
