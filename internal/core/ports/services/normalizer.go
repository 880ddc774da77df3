package services

import (
	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
)

// OfferNormalizer folds provider payloads into the canonical offer shape.
// Normalization is pure: no I/O, no clock reads except the booking-hold
// computation, and a fresh output per call.
type OfferNormalizer interface {
	// NormalizeSearch maps every usable offer in the response. Offers that
	// require instant ticketing or fail integrity checks are dropped, never
	// surfaced as errors.
	NormalizeSearch(resp *amadeus.SearchResponse) []domain.CanonicalOffer

	// NormalizePricing maps the confirmed offer and its booking
	// requirements. Returns apperrors.ErrOfferIntegrity wrapped errors when
	// the payload cannot be normalized.
	NormalizePricing(resp *amadeus.PricingResponse) (*domain.PricedOffer, error)

	// NormalizeOrder maps a created or retrieved order into the booking
	// fields persisted at settlement.
	NormalizeOrder(resp *amadeus.OrderResponse) (*domain.NormalizedOrder, error)

	// BookingHold converts a ticketing deadline into the whole days an order
	// may defer ticketing, clamped to the provider maximum.
	BookingHold(lastTicketTime string) int
}
