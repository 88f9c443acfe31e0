package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batcheasycook/batchcook-api/internal/cart"
	"github.com/batcheasycook/batchcook-api/internal/models"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
)

// CartHandler prices a cart server-side. The storefront keeps its own
// cart state; this endpoint re-derives every figure from the catalog so
// submissions can be cross-checked.
type CartHandler struct {
	service *service.DishService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.DishService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// QuoteItem is one requested cart line.
type QuoteItem struct {
	DishID   string `json:"dishId"`
	Servings int    `json:"servings"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest is the cart pricing payload.
type QuoteRequest struct {
	Items []QuoteItem `json:"items"`
}

// QuoteResponse is the fully priced cart.
type QuoteResponse struct {
	Lines        []cart.Line         `json:"lines"`
	TotalItems   int                 `json:"totalItems"`
	TotalPrice   float64             `json:"totalPrice"`
	TotalTime    int                 `json:"totalTime"`
	CookingPrice float64             `json:"cookingPrice"`
	GrandTotal   float64             `json:"grandTotal"`
	WeeklyPrice  float64             `json:"weeklyPrice"`
	ShoppingList []models.Ingredient `json:"shoppingList"`
}

// Quote handles POST /api/cart/quote
// - 200: priced cart
// - 400: malformed payload, empty cart or invalid servings
// - 404: unknown dish
func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid quote payload", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Cart must contain at least one item", h.logger)
		return
	}

	c := cart.New()
	for _, item := range req.Items {
		if item.Servings < 1 {
			writeError(w, http.StatusBadRequest, "Servings must be a positive integer", h.logger)
			return
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			writeError(w, http.StatusBadRequest, "Quantity must be a positive integer", h.logger)
			return
		}

		view, err := h.service.GetDishAtServings(ctx, item.DishID, item.Servings)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				h.logger.Info("dish not found", "dishId", item.DishID)
				writeError(w, http.StatusNotFound, "Dish not found: "+item.DishID, h.logger)
				return
			}
			h.logger.Error("failed to price cart item", "dishId", item.DishID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
			return
		}

		for i := 0; i < quantity; i++ {
			c.AddLine(view.Dish, item.Servings, view.AdjustedIngredients, view.AdjustedTime, view.AdjustedPrice)
		}
	}

	writeJSON(w, http.StatusOK, QuoteResponse{
		Lines:        c.Lines(),
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
		TotalTime:    c.TotalTime(),
		CookingPrice: c.CookingPrice(),
		GrandTotal:   c.GrandTotal(),
		WeeklyPrice:  cart.WeeklyPrice,
		ShoppingList: c.ShoppingList(),
	}, h.logger)
}
