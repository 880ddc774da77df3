package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/hotels/hotelbeds"
)

// HotelProvider is the hotel availability and content API used by the hotel
// pipeline.
type HotelProvider interface {
	SearchHotels(ctx context.Context, req hotelbeds.SearchRequest) (*hotelbeds.SearchResponse, error)
	HotelDetails(ctx context.Context, hotelCode string) (*hotelbeds.DetailsResponse, error)
	ListDestinations(ctx context.Context) (*hotelbeds.DestinationsResponse, error)
}
