package repositories

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// GdsRefRepository persists the booking-id to provider-order-id registry.
// The ref row is written before the booking record and survives a failed
// second phase, anchoring later reconciliation.
type GdsRefRepository interface {
	SaveRef(ctx context.Context, ref domain.GdsBookingRef) error

	// GetRefByBookingID returns the mapping or apperrors.ErrNotFound.
	GetRefByBookingID(ctx context.Context, bookingID string) (*domain.GdsBookingRef, error)
}
