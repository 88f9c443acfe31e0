package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/batcheasycook/batchcook-api/internal/config"
	"github.com/google/uuid"
)

// quantityEvent is one cart mutation in the partner wire format.
type quantityEvent struct {
	Type     string `json:"type"`
	DateTime string `json:"dateTime"`
	Catalog  string `json:"catalog"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// cartRequest is the partner cart synchronization payload.
type cartRequest struct {
	CustomerDateTime string          `json:"customerDateTime"`
	Events           []quantityEvent `json:"events"`
}

// cartSyncResponse is the subset of the partner response the storefront
// consumes.
type cartSyncResponse struct {
	ID          string `json:"id"`
	ItemsNumber int    `json:"itemsNumber"`
	MetaData    *struct {
		Invalid *struct {
			Unavailables []json.RawMessage `json:"unavailables"`
			Stocks       []json.RawMessage `json:"stocks"`
		} `json:"invalid"`
	} `json:"metaData"`
}

// SyncResult is the outcome reported to the storefront.
type SyncResult struct {
	Success    bool     `json:"success"`
	CartID     string   `json:"cartId,omitempty"`
	AddedItems int      `json:"addedItems"`
	Errors     []string `json:"errors,omitempty"`
	Fallback   bool     `json:"fallback,omitempty"`
}

// Client talks to the partner cart API.
type Client struct {
	cfg    config.GroceryConfig
	mapper *Mapper
	http   *http.Client
	log    *slog.Logger
}

// NewClient creates a partner API client.
func NewClient(cfg config.GroceryConfig, log *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		mapper: NewMapper(),
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// SynchronizeCart maps the ingredient names to partner items and pushes
// them to the partner cart. Upstream failures other than rate limiting
// degrade to a local best-effort result; rate limiting is surfaced as-is
// so the caller can back off.
func (c *Client) SynchronizeCart(ctx context.Context, ingredients []string) (*SyncResult, error) {
	mapped, unmapped := c.mapper.Partition(ingredients)

	if len(mapped) == 0 {
		return &SyncResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("no partner product found for: %s", strings.Join(unmapped, ", "))},
		}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	events := make([]quantityEvent, 0, len(mapped))
	for _, product := range mapped {
		events = append(events, quantityEvent{
			Type:     "QUANTITY",
			DateTime: now,
			Catalog:  "PDV",
			ItemID:   product.ItemID,
			Quantity: 1,
		})
	}

	body, err := json.Marshal(cartRequest{CustomerDateTime: now, Events: events})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart request: %w", err)
	}

	url := fmt.Sprintf("%s/carts/synchronize?storeId=%s&isActiveAnonymousPersistence=true",
		c.cfg.BaseURL, c.cfg.StoreID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)
	req.Header.Set("X-App-Name", c.cfg.AppName)
	req.Header.Set("X-App-Version", c.cfg.AppVersion)
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", c.cfg.AppName, c.cfg.AppVersion))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("partner api unreachable, using local fallback", "error", err)
		return c.fallback(mapped, unmapped, "partner API unreachable"), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleUpstreamError(resp.StatusCode, mapped, unmapped)
	}

	var result cartSyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("partner api returned malformed response, using local fallback", "error", err)
		return c.fallback(mapped, unmapped, "malformed partner response"), nil
	}

	errors := make([]string, 0)
	if result.MetaData != nil && result.MetaData.Invalid != nil {
		if n := len(result.MetaData.Invalid.Unavailables); n > 0 {
			errors = append(errors, fmt.Sprintf("unavailable products: %d", n))
		}
		if n := len(result.MetaData.Invalid.Stocks); n > 0 {
			errors = append(errors, fmt.Sprintf("stock issues: %d", n))
		}
	}
	if len(unmapped) > 0 {
		errors = append(errors, fmt.Sprintf("not found: %s", strings.Join(unmapped, ", ")))
	}

	return &SyncResult{
		Success:    true,
		CartID:     result.ID,
		AddedItems: result.ItemsNumber,
		Errors:     errors,
	}, nil
}

// handleUpstreamError applies the fallback policy: auth failures,
// malformed requests, not-found and server errors degrade to a local
// result; rate limiting never does.
func (c *Client) handleUpstreamError(status int, mapped []Product, unmapped []string) (*SyncResult, error) {
	var message string
	switch status {
	case http.StatusUnauthorized:
		message = "partner authentication failed, check the API key"
	case http.StatusBadRequest:
		message = "partner rejected the request format"
	case http.StatusNotFound:
		message = "partner store or cart not found, check the store id"
	case http.StatusTooManyRequests:
		// No fallback on rate limiting: the caller must back off.
		return &SyncResult{
			Success: false,
			Errors:  []string{"partner rate limit exceeded, try again later"},
		}, nil
	case http.StatusGatewayTimeout:
		message = "partner timeout"
	default:
		message = fmt.Sprintf("partner error (HTTP %d)", status)
	}

	c.log.Warn("partner api error, using local fallback", "status", status, "message", message)
	return c.fallback(mapped, unmapped, message), nil
}

// fallback builds the local best-effort result substituted when the
// partner is unusable.
func (c *Client) fallback(mapped []Product, unmapped []string, reason string) *SyncResult {
	errors := []string{reason, "demo mode result"}
	if len(unmapped) > 0 {
		errors = append(errors, fmt.Sprintf("not found: %s", strings.Join(unmapped, ", ")))
	}

	return &SyncResult{
		Success:    true,
		CartID:     "local-" + uuid.New().String(),
		AddedItems: len(mapped),
		Errors:     errors,
		Fallback:   true,
	}
}
