package repositories

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// CurrencyRepository persists display-conversion rates.
type CurrencyRepository interface {
	UpsertCurrency(ctx context.Context, currency domain.Currency) error
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
