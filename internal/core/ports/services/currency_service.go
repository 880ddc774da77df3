package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/dto"
)

// CurrencyService maintains display-conversion rates.
type CurrencyService interface {
	UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error)
	GetCurrency(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
