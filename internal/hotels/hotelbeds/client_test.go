package hotelbeds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "k", Secret: "s"}, nil)
}

func TestSign_HashesKeySecretAndTimestamp(t *testing.T) {
	at := time.Unix(1756380000, 0)
	// sha256("k" + "s" + "1756380000")
	assert.Equal(t, sign("k", "s", at), sign("k", "s", at))
	assert.NotEqual(t, sign("k", "s", at), sign("k", "s", at.Add(time.Second)))
	assert.NotEqual(t, sign("k", "s", at), sign("k", "other", at))
	assert.Len(t, sign("k", "s", at), 64)
}

func TestClient_SearchHotels(t *testing.T) {
	var gotPath, gotKey, gotSig string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Api-Key")
		gotSig = r.Header.Get("X-Signature")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hotels":{"total":2,"hotels":[
			{"code":1234,"name":"Grand Palm","categoryName":"4 STARS","destinationName":"Palma","zoneName":"Center","minRate":"120.50","currency":"EUR"},
			{"code":5678,"name":"Sea View","categoryName":"3 STARS","minRate":"80.00","currency":"EUR"}
		]}}`))
	})

	resp, err := client.SearchHotels(context.Background(), SearchRequest{
		Stay:        Stay{CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
		Occupancies: []Occupancy{{Rooms: 1, Adults: 2}},
		Destination: Destination{Code: "PMI"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/hotel-api/1.0/hotels", gotPath)
	assert.Equal(t, "k", gotKey)

	// the signature covers key, secret and the request-time unix timestamp
	now := time.Now()
	matched := false
	for skew := -2 * time.Second; skew <= 2*time.Second; skew += time.Second {
		if sign("k", "s", now.Add(skew)) == gotSig {
			matched = true
			break
		}
	}
	assert.True(t, matched)

	require.Len(t, resp.Hotels.Hotels, 2)
	assert.Equal(t, 1234, resp.Hotels.Hotels[0].Code)
	assert.Equal(t, "120.50", resp.Hotels.Hotels[0].MinRate)
}

func TestClient_HotelDetails(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hotel":{"code":1234,"name":{"content":"Grand Palm"},"city":{"content":"Palma"}}}`))
	})

	resp, err := client.HotelDetails(context.Background(), "1234")
	require.NoError(t, err)

	assert.Equal(t, "/hotel-content-api/1.0/hotels/1234/details", gotPath)
	assert.Contains(t, gotQuery, "language=ENG")
	assert.Equal(t, "Grand Palm", resp.Hotel.Name.Content)
	assert.Equal(t, "Palma", resp.Hotel.City.Content)
}

func TestClient_ListDestinations(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotel-content-api/1.0/locations/destinations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":1,"destinations":[{"code":"PMI","name":{"content":"Palma de Mallorca"},"isoCode":"PMI","countryCode":"ES"}]}`))
	})

	resp, err := client.ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Destinations, 1)
	assert.Equal(t, "PMI", resp.Destinations[0].Code)
	assert.Equal(t, "Palma de Mallorca", resp.Destinations[0].Name.Content)
}

func TestClient_SurfacesProviderError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid signature"}`))
	})

	_, err := client.SearchHotels(context.Background(), SearchRequest{})
	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusForbidden, provErr.Status)
	assert.Contains(t, string(provErr.Payload), "invalid signature")
}
