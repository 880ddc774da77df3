package services

import (
	"context"
	"encoding/json"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/dto"
)

// FlightService drives the offer pipeline: shop, confirm price, book, cancel.
type FlightService interface {
	// Search returns normalized offers for the query. Provider failures
	// degrade to an empty result, never an error to the caller.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.CanonicalOffer, error)

	// Price confirms an offer's current fare and booking requirements.
	Price(ctx context.Context, rawOffer json.RawMessage) (*domain.PricedOffer, error)

	// Book creates the order upstream, registers the id mapping, retrieves
	// the order and persists the booking under the authenticated owner. A
	// failure after order creation returns apperrors.ErrUnreconciled; the
	// mapping row has already been written by then.
	Book(ctx context.Context, owner domain.OwnerRef, req dto.BookFlightRequest) (*domain.BookingRecord, error)

	// Cancel flips a Booked record to Cancelled after the provider confirms
	// the order deletion. Exactly one caller can win a concurrent cancel.
	Cancel(ctx context.Context, bookingID string) (*domain.BookingRecord, error)
}
