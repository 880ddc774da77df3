package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/dto"
)

// HotelService drives the hotel pipeline: availability with display quotes,
// content details, and the destination catalogue.
type HotelService interface {
	// Search returns the best available hotels for the stay, each carrying
	// quotes in the back-office conversion currencies. A hotel whose content
	// sheet cannot be fetched is returned without details.
	Search(ctx context.Context, req dto.HotelSearchRequest) ([]domain.HotelSummary, error)

	// Details fetches and flattens one hotel's content sheet.
	Details(ctx context.Context, hotelCode string) (*domain.HotelDetails, error)

	// Destinations lists the bookable destination catalogue.
	Destinations(ctx context.Context) ([]domain.HotelDestination, error)
}
