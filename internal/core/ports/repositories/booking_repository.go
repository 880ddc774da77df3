package repositories

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// BookingRepository persists booking records.
type BookingRepository interface {
	// SaveBooking inserts a new booking record with its frozen offer snapshot
	// and travelers.
	SaveBooking(ctx context.Context, booking domain.BookingRecord) error

	// GetBookingByID returns the booking or apperrors.ErrNotFound.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error)

	// ListBookingsByOwner returns the owner's bookings newest first, plus the
	// total count for paging. An empty status matches every lifecycle state.
	ListBookingsByOwner(ctx context.Context, owner domain.OwnerRef, status string, limit, offset int) ([]domain.BookingRecord, int64, error)

	// MarkCancelled flips exactly one Booked record to Cancelled. It returns
	// apperrors.ErrNotFound when no record exists and
	// apperrors.ErrNotCancellable when the record is not in Booked state, so
	// concurrent cancels resolve to a single winner.
	MarkCancelled(ctx context.Context, bookingID string) error
}
