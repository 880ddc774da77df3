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

type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

func (r *PgxCurrencyRepository) UpsertCurrency(ctx context.Context, currency domain.Currency) error {
	model := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, value, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_code) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.Code,
		model.Value,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert currency %s: %w", model.Code, err)
	}
	return nil
}

func (r *PgxCurrencyRepository) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, value, created_at, last_updated_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var model models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&model.Code,
		&model.Value,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", code, err)
	}

	currency := mapping.ToDomainCurrency(model)
	return &currency, nil
}

func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, value, created_at, last_updated_at
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var model models.Currency
		if err := rows.Scan(&model.Code, &model.Value, &model.CreatedAt, &model.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate currencies: %w", err)
	}
	return currencies, nil
}
