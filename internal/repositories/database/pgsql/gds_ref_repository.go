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

type PgxGdsRefRepository struct {
	BaseRepository
}

func newPgxGdsRefRepository(pool *pgxpool.Pool) portsrepo.GdsRefRepository {
	return &PgxGdsRefRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GdsRefRepository = (*PgxGdsRefRepository)(nil)

func (r *PgxGdsRefRepository) SaveRef(ctx context.Context, ref domain.GdsBookingRef) error {
	model := mapping.ToModelGdsRef(ref)

	query := `
		INSERT INTO gds_booking_refs (booking_id, gds_id, queuing_office_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.BookingID,
		model.GdsID,
		model.QueuingOfficeID,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save gds ref for %s: %w", model.BookingID, err)
	}
	return nil
}

func (r *PgxGdsRefRepository) GetRefByBookingID(ctx context.Context, bookingID string) (*domain.GdsBookingRef, error) {
	query := `
		SELECT booking_id, gds_id, queuing_office_id, created_at, last_updated_at
		FROM gds_booking_refs
		WHERE booking_id = $1;
	`
	var model models.GdsBookingRef
	err := r.Pool.QueryRow(ctx, query, bookingID).Scan(
		&model.BookingID,
		&model.GdsID,
		&model.QueuingOfficeID,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gds ref for %s: %w", bookingID, err)
	}

	ref := mapping.ToDomainGdsRef(model)
	return &ref, nil
}
