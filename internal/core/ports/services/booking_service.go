package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// BookingService reads persisted bookings.
type BookingService interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error)

	// ListBookings pages the owner's bookings, optionally filtered to one
	// lifecycle status.
	ListBookings(ctx context.Context, owner domain.OwnerRef, status string, limit, offset int) ([]domain.BookingRecord, int64, error)
}
