// Package hotelbeds is the hotel content and availability integration: typed
// payloads and an HTTP client with per-request signature auth.
package hotelbeds

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config holds the provider connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Secret  string
	Timeout time.Duration
}

// ProviderError is a non-2xx provider response. The payload is kept verbatim
// so callers can surface the provider's own diagnostics.
type ProviderError struct {
	Status  int
	Payload json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("hotel provider returned status %d", e.Status)
}

// Client calls the provider REST API. Every request is signed with a SHA-256
// digest over the api key, the shared secret and the current unix timestamp.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	secret  string
	logger  *slog.Logger
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
		apiKey:  cfg.APIKey,
		secret:  cfg.Secret,
		logger:  logger,
	}
}

func sign(apiKey, secret string, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	sum := sha256.Sum256([]byte(apiKey + secret + ts))
	return hex.EncodeToString(sum[:])
}

// do runs one provider call, decoding a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode hotel provider request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build hotel provider request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("X-Signature", sign(c.apiKey, c.secret, time.Now()))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("hotel provider request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read hotel provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "hotel provider call rejected",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return &ProviderError{Status: resp.StatusCode, Payload: respBody}
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode hotel provider response: %w", err)
		}
	}
	return nil
}

// SearchHotels runs the availability call.
func (c *Client) SearchHotels(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, http.MethodPost, "/hotel-api/1.0/hotels", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HotelDetails fetches the content sheet of one hotel.
func (c *Client) HotelDetails(ctx context.Context, hotelCode string) (*DetailsResponse, error) {
	var out DetailsResponse
	path := "/hotel-content-api/1.0/hotels/" + url.PathEscape(hotelCode) +
		"/details?language=ENG&useSecondaryLanguage=False"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDestinations fetches the bookable destination catalogue.
func (c *Client) ListDestinations(ctx context.Context) (*DestinationsResponse, error) {
	var out DestinationsResponse
	path := "/hotel-content-api/1.0/locations/destinations?fields=all&language=ENG&from=1&to=1000&useSecondaryLanguage=false"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
