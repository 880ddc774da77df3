package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   1799,
		})
	})
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "k", APISecret: "s"}, nil)
	return srv, client
}

func TestClient_Search(t *testing.T) {
	var gotPath, gotAuth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta":{"count":1},"data":[{"id":"1","numberOfBookableSeats":4}]}`))
	})

	resp, err := client.Search(context.Background(), domain.SearchQuery{
		TripType: domain.OneWay, Origin: "DAC", Destination: "DXB",
		DepartureDate: "2026-09-10", Adults: 1, CabinClass: "economy",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v2/shopping/flight-offers", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 4, resp.Data[0].NumberOfBookableSeats)
}

func TestClient_RetriesOnceOnUnauthorized(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.Search(context.Background(), domain.SearchQuery{TripType: domain.OneWay, Adults: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestClient_SurfacesProviderError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"INVALID DATA RECEIVED"}]}`))
	})

	_, err := client.Search(context.Background(), domain.SearchQuery{TripType: domain.OneWay, Adults: 1})
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusBadRequest, provErr.Status)
	assert.Contains(t, string(provErr.Payload), "INVALID DATA RECEIVED")
}

func TestClient_CancelOrderEscapesID(t *testing.T) {
	var gotEscaped string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.CancelOrder(context.Background(), "eJzTd9f3jo/38QUAC8YCuA==")
	require.NoError(t, err)
	assert.Equal(t, "/v1/booking/flight-orders/eJzTd9f3jo%2F38QUAC8YCuA==", gotEscaped)
}
