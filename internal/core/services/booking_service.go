package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
)

type bookingService struct {
	bookings repoports.BookingRepository
}

var _ svcports.BookingService = (*bookingService)(nil)

// NewBookingService builds the read side of bookings.
func NewBookingService(bookings repoports.BookingRepository) svcports.BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	return s.bookings.GetBookingByID(ctx, bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context, owner domain.OwnerRef, status string, limit, offset int) ([]domain.BookingRecord, int64, error) {
	return s.bookings.ListBookingsByOwner(ctx, owner, status, limit, offset)
}
