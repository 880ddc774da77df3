// Package amadeus is the GDS integration: typed request/response payloads,
// request builders, and an HTTP client with client-credentials token
// management.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// Config holds the provider connection settings.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// ProviderError is a non-2xx provider response. The payload is kept verbatim
// so callers can surface the provider's own diagnostics.
type ProviderError struct {
	Status  int
	Payload json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Status)
}

// Client calls the provider REST API. A bearer token is fetched lazily via
// the client-credentials grant and cached until expiry; a 401 triggers one
// forced refresh and a single retry.
type Client struct {
	http    *http.Client
	baseURL string
	creds   clientcredentials.Config
	logger  *slog.Logger

	mu     sync.Mutex
	tokens oauth2.TokenSource
}

// NewClient builds a provider client. A zero timeout defaults to 30s.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		creds: clientcredentials.Config{
			ClientID:     cfg.APIKey,
			ClientSecret: cfg.APISecret,
			TokenURL:     cfg.BaseURL + "/v1/security/oauth2/token",
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		logger: logger,
	}
}

// token returns a valid bearer token, recreating the cached source when a
// forced refresh is requested.
func (c *Client) token(ctx context.Context, force bool) (*oauth2.Token, error) {
	c.mu.Lock()
	if c.tokens == nil || force {
		c.tokens = c.creds.TokenSource(context.WithValue(ctx, oauth2.HTTPClient, c.http))
	}
	src := c.tokens
	c.mu.Unlock()

	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain provider token: %w", err)
	}
	return tok, nil
}

// do runs one provider call, decoding a 2xx body into out (when non-nil).
// On a 401 the token is refreshed and the request replayed once.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode provider request: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		tok, err := c.token(ctx, attempt > 0)
		if err != nil {
			return err
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("failed to build provider request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("provider request failed: %w", err)
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read provider response: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			c.logger.WarnContext(ctx, "provider token rejected, refreshing", slog.String("path", path))
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &ProviderError{Status: resp.StatusCode, Payload: respBody}
		}
		if out != nil {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to decode provider response: %w", err)
			}
		}
		return nil
	}
}

// Search runs the flight-offers shopping call.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, http.MethodPost, "/v2/shopping/flight-offers", BuildSearchRequest(query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Price confirms an offer's fare and booking requirements. The offer bytes
// are resent exactly as received from search.
func (c *Client) Price(ctx context.Context, rawOffer json.RawMessage) (*PricingResponse, error) {
	var out PricingResponse
	if err := c.do(ctx, http.MethodPost, "/v1/shopping/flight-offers/pricing?forceClass=true", BuildPricingRequest(rawOffer), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder books an offer and returns the created order.
func (c *Client) CreateOrder(ctx context.Context, rawOffer json.RawMessage, travelers []domain.Traveler, holdDays int) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodPost, "/v1/booking/flight-orders", BuildOrderRequest(rawOffer, travelers, holdDays), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrieveOrder fetches an existing order by its provider id. Provider order
// ids contain characters that require escaping in a path position.
func (c *Client) RetrieveOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	var out OrderResponse
	path := "/v1/booking/flight-orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder deletes an order. Only a 2xx response counts as cancelled;
// anything else surfaces as a ProviderError.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	path := "/v1/booking/flight-orders/" + url.PathEscape(orderID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
