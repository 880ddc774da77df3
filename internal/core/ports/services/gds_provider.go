package services

import (
	"context"
	"encoding/json"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
)

// GdsProvider is the upstream reservation system. The payload types are the
// provider's own wire shapes; normalization into canonical offers happens
// behind OfferNormalizer, never in callers.
type GdsProvider interface {
	Search(ctx context.Context, query domain.SearchQuery) (*amadeus.SearchResponse, error)
	Price(ctx context.Context, rawOffer json.RawMessage) (*amadeus.PricingResponse, error)
	CreateOrder(ctx context.Context, rawOffer json.RawMessage, travelers []domain.Traveler, holdDays int) (*amadeus.OrderResponse, error)
	RetrieveOrder(ctx context.Context, orderID string) (*amadeus.OrderResponse, error)

	// CancelOrder deletes the order upstream. Only a 2xx provider response
	// returns nil.
	CancelOrder(ctx context.Context, orderID string) error
}
