package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	portsrepo "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	"github.com/epicquest/travel-backend/internal/models"
	"github.com/epicquest/travel-backend/internal/utils/mapping"
)

type PgxBookingRepository struct {
	BaseRepository
}

func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepository {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookingRepository = (*PgxBookingRepository)(nil)

const bookingColumns = `booking_id, offer_id, system, status, booking_date_time, trip_type,
	gds_pnr, airline_pnr, offer, travellers, user_id, agent_id, created_at, last_updated_at`

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.BookingRecord) error {
	model, err := mapping.ToModelBooking(booking)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = r.Pool.Exec(ctx, query,
		model.BookingID,
		model.OfferID,
		model.System,
		model.Status,
		model.BookingDateTime,
		model.TripType,
		model.GdsPNR,
		model.AirlinePNR,
		model.Offer,
		model.Travellers,
		model.UserID,
		model.AgentID,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking %s: %w", model.BookingID, err)
	}
	return nil
}

func (r *PgxBookingRepository) GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`

	model, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}

	booking, err := mapping.ToDomainBooking(model)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *PgxBookingRepository) ListBookingsByOwner(ctx context.Context, owner domain.OwnerRef, status string, limit, offset int) ([]domain.BookingRecord, int64, error) {
	filter, ownerID := ownerFilter(owner)
	if ownerID == "" {
		return nil, 0, fmt.Errorf("%w: listing needs an owner", apperrors.ErrValidation)
	}
	filter += ` AND ($2 = '' OR status = $2)`

	var total int64
	countQuery := `SELECT COUNT(*) FROM bookings WHERE ` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, ownerID, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ` + filter + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.BookingRecord
	for rows.Next() {
		model, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking row: %w", err)
		}
		booking, err := mapping.ToDomainBooking(model)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, total, nil
}

// MarkCancelled is the single winner gate for cancellation: the conditional
// update succeeds for exactly one caller per booking.
func (r *PgxBookingRepository) MarkCancelled(ctx context.Context, bookingID string) error {
	query := `
		UPDATE bookings
		SET status = $2, last_updated_at = NOW()
		WHERE booking_id = $1 AND status = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, bookingID, string(domain.StatusCancelled), string(domain.StatusBooked))
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_id = $1);`, bookingID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check booking %s: %w", bookingID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrNotCancellable
}

func ownerFilter(owner domain.OwnerRef) (clause, id string) {
	switch {
	case owner.UserID != nil:
		return "user_id = $1", *owner.UserID
	case owner.AgentID != nil:
		return "agent_id = $1", *owner.AgentID
	default:
		return "", ""
	}
}

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.OfferID,
		&m.System,
		&m.Status,
		&m.BookingDateTime,
		&m.TripType,
		&m.GdsPNR,
		&m.AirlinePNR,
		&m.Offer,
		&m.Travellers,
		&m.UserID,
		&m.AgentID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}
