package grocery

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/batcheasycook/batchcook-api/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.GroceryConfig {
	return config.GroceryConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		AppName:    "test-app",
		AppVersion: "0.0.1",
		StoreID:    "103932",
	}
}

func TestMapperLookup(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		name       string
		ingredient string
		wantFound  bool
		wantItemID string
	}{
		{"exact catalog name", "Poulet entier", true, "2776"},
		{"case insensitive", "POULET ENTIER", true, "2776"},
		{"surrounding whitespace", "  Carottes  ", true, "40300"},
		{"unknown ingredient", "Safran", false, ""},
		{"empty name", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, found := m.Lookup(tt.ingredient)
			if found != tt.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.ingredient, found, tt.wantFound)
			}
			if found && product.ItemID != tt.wantItemID {
				t.Errorf("Lookup(%q) item id = %s, want %s", tt.ingredient, product.ItemID, tt.wantItemID)
			}
		})
	}
}

func TestMapperPartition(t *testing.T) {
	m := NewMapper()

	mapped, unmapped := m.Partition([]string{"Poulet entier", "Safran", "Carottes", "Truffe"})

	if len(mapped) != 2 {
		t.Fatalf("expected 2 mapped products, got %d", len(mapped))
	}
	if mapped[0].ItemID != "2776" || mapped[1].ItemID != "40300" {
		t.Errorf("mapped items out of order: %v", mapped)
	}
	if len(unmapped) != 2 {
		t.Fatalf("expected 2 unmapped names, got %d", len(unmapped))
	}
	if unmapped[0] != "Safran" || unmapped[1] != "Truffe" {
		t.Errorf("unmapped names = %v", unmapped)
	}
}

func TestSynchronizeCartSuccess(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody cartRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAPIKey = r.Header.Get("X-Api-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "cart-123",
			"itemsNumber": 2,
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())

	result, err := client.SynchronizeCart(context.Background(), []string{"Poulet entier", "Carottes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("expected success")
	}
	if result.CartID != "cart-123" {
		t.Errorf("cart id = %s, want cart-123", result.CartID)
	}
	if result.AddedItems != 2 {
		t.Errorf("added items = %d, want 2", result.AddedItems)
	}
	if result.Fallback {
		t.Error("should not be a fallback result")
	}

	if !strings.Contains(gotPath, "/carts/synchronize") || !strings.Contains(gotPath, "storeId=103932") {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("api key header = %s", gotAPIKey)
	}
	if len(gotBody.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(gotBody.Events))
	}
	if gotBody.Events[0].Type != "QUANTITY" || gotBody.Events[0].Catalog != "PDV" {
		t.Errorf("unexpected event shape: %+v", gotBody.Events[0])
	}
}

func TestSynchronizeCartReportsUnmapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "cart-1", "itemsNumber": 1})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())

	result, err := client.SynchronizeCart(context.Background(), []string{"Poulet entier", "Safran"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("expected success")
	}
	found := false
	for _, msg := range result.Errors {
		if strings.Contains(msg, "Safran") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unmapped name in errors, got %v", result.Errors)
	}
}

func TestSynchronizeCartServerErrorFallsBack(t *testing.T) {
	statuses := []int{
		http.StatusUnauthorized,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusInternalServerError,
		http.StatusGatewayTimeout,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), testLogger())

			result, err := client.SynchronizeCart(context.Background(), []string{"Poulet entier"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !result.Success {
				t.Error("fallback result should report success")
			}
			if !result.Fallback {
				t.Error("expected fallback flag")
			}
			if !strings.HasPrefix(result.CartID, "local-") {
				t.Errorf("fallback cart id = %s", result.CartID)
			}
			if result.AddedItems != 1 {
				t.Errorf("added items = %d, want 1", result.AddedItems)
			}
		})
	}
}

func TestSynchronizeCartRateLimitedNoFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())

	result, err := client.SynchronizeCart(context.Background(), []string{"Poulet entier"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success {
		t.Error("rate limited call must not succeed")
	}
	if result.Fallback {
		t.Error("rate limited call must not fall back")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "rate limit") {
		t.Errorf("expected rate limit error, got %v", result.Errors)
	}
}

func TestSynchronizeCartNetworkErrorFallsBack(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1"), testLogger())

	result, err := client.SynchronizeCart(context.Background(), []string{"Poulet entier"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || !result.Fallback {
		t.Errorf("expected fallback success, got %+v", result)
	}
}

func TestSynchronizeCartAllUnmappedFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("partner must not be called when nothing maps")
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())

	result, err := client.SynchronizeCart(context.Background(), []string{"Safran", "Truffe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success {
		t.Error("expected failure when nothing maps")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Safran") {
		t.Errorf("expected unmapped names in errors, got %v", result.Errors)
	}
}
