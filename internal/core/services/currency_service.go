package services

import (
	"context"
	"strings"
	"time"

	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
)

type currencyService struct {
	currencies repoports.CurrencyRepository
	now        func() time.Time
}

var _ svcports.CurrencyService = (*currencyService)(nil)

// NewCurrencyService builds the display-rate maintenance service.
func NewCurrencyService(currencies repoports.CurrencyRepository, now func() time.Time) svcports.CurrencyService {
	if now == nil {
		now = time.Now
	}
	return &currencyService{currencies: currencies, now: now}
}

func (s *currencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error) {
	currency := domain.Currency{
		Code:  strings.ToUpper(req.Currency),
		Value: req.Value,
	}
	currency.CreatedAt = s.now()
	currency.LastUpdatedAt = currency.CreatedAt

	if err := s.currencies.UpsertCurrency(ctx, currency); err != nil {
		return nil, err
	}
	return &currency, nil
}

func (s *currencyService) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	return s.currencies.GetCurrencyByCode(ctx, strings.ToUpper(code))
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencies.ListCurrencies(ctx)
}
