package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
	"github.com/batcheasycook/batchcook-api/pkg/logger"
)

func newCartHandler() *CartHandler {
	svc := service.NewDishService(repository.NewInMemoryDishRepository(), repository.NewInMemoryMenuRepository())
	return NewCartHandler(svc, logger.New("error"))
}

func TestQuote_Success(t *testing.T) {
	handler := newCartHandler()

	// Two units of the roast chicken for 4 plus one for 8
	body := `{"items":[
		{"dishId":"poulet-roti","servings":4,"quantity":2},
		{"dishId":"poulet-roti","servings":8}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/quote", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Quote(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var quote QuoteResponse
	if err := json.NewDecoder(w.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(quote.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(quote.Lines))
	}
	if quote.Lines[0].Quantity != 2 {
		t.Errorf("first line quantity = %d, want 2", quote.Lines[0].Quantity)
	}
	if quote.TotalItems != 3 {
		t.Errorf("total items = %d, want 3", quote.TotalItems)
	}
	if quote.TotalPrice != 144 {
		t.Errorf("total price = %v, want 144", quote.TotalPrice)
	}
	if quote.TotalTime != 192 {
		t.Errorf("total time = %d, want 192", quote.TotalTime)
	}
	if quote.CookingPrice != 44.8 {
		t.Errorf("cooking price = %v, want 44.8", quote.CookingPrice)
	}
	if quote.GrandTotal != 188.8 {
		t.Errorf("grand total = %v, want 188.8", quote.GrandTotal)
	}
	if quote.WeeklyPrice != 100 {
		t.Errorf("weekly price = %v, want 100", quote.WeeklyPrice)
	}

	// Shopping list merges both lines: same name, same unit sums
	if len(quote.ShoppingList) != 5 {
		t.Fatalf("expected 5 shopping list entries, got %d", len(quote.ShoppingList))
	}
	for _, ing := range quote.ShoppingList {
		if ing.Name == "Pommes de terre" {
			if ing.Quantity == nil || *ing.Quantity != 3200 {
				t.Errorf("potatoes quantity = %v, want 3200", ing.Quantity)
			}
		}
	}
}

func TestQuote_EmptyCart(t *testing.T) {
	handler := newCartHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/quote", strings.NewReader(`{"items":[]}`))
	w := httptest.NewRecorder()

	handler.Quote(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestQuote_UnknownDish(t *testing.T) {
	handler := newCartHandler()

	body := `{"items":[{"dishId":"nope","servings":4}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/quote", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Quote(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestQuote_InvalidServings(t *testing.T) {
	handler := newCartHandler()

	body := `{"items":[{"dishId":"poulet-roti","servings":0}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/quote", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Quote(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
