package services_test

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
	"github.com/epicquest/travel-backend/internal/hotels/hotelbeds"
)

type mockGdsProvider struct{ mock.Mock }

func (m *mockGdsProvider) Search(ctx context.Context, query domain.SearchQuery) (*amadeus.SearchResponse, error) {
	args := m.Called(ctx, query)
	if resp := args.Get(0); resp != nil {
		return resp.(*amadeus.SearchResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGdsProvider) Price(ctx context.Context, rawOffer json.RawMessage) (*amadeus.PricingResponse, error) {
	args := m.Called(ctx, rawOffer)
	if resp := args.Get(0); resp != nil {
		return resp.(*amadeus.PricingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGdsProvider) CreateOrder(ctx context.Context, rawOffer json.RawMessage, travelers []domain.Traveler, holdDays int) (*amadeus.OrderResponse, error) {
	args := m.Called(ctx, rawOffer, travelers, holdDays)
	if resp := args.Get(0); resp != nil {
		return resp.(*amadeus.OrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGdsProvider) RetrieveOrder(ctx context.Context, orderID string) (*amadeus.OrderResponse, error) {
	args := m.Called(ctx, orderID)
	if resp := args.Get(0); resp != nil {
		return resp.(*amadeus.OrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGdsProvider) CancelOrder(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

type mockHotelProvider struct{ mock.Mock }

func (m *mockHotelProvider) SearchHotels(ctx context.Context, req hotelbeds.SearchRequest) (*hotelbeds.SearchResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*hotelbeds.SearchResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelProvider) HotelDetails(ctx context.Context, hotelCode string) (*hotelbeds.DetailsResponse, error) {
	args := m.Called(ctx, hotelCode)
	if resp := args.Get(0); resp != nil {
		return resp.(*hotelbeds.DetailsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelProvider) ListDestinations(ctx context.Context) (*hotelbeds.DestinationsResponse, error) {
	args := m.Called(ctx)
	if resp := args.Get(0); resp != nil {
		return resp.(*hotelbeds.DestinationsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCurrencyService struct{ mock.Mock }

func (m *mockCurrencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if c := args.Get(0); c != nil {
		return c.(*domain.Currency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCurrencyService) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if c := args.Get(0); c != nil {
		return c.(*domain.Currency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]domain.Currency), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepository struct{ mock.Mock }

func (m *mockBookingRepository) SaveBooking(ctx context.Context, booking domain.BookingRecord) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, bookingID)
	if b := args.Get(0); b != nil {
		return b.(*domain.BookingRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) ListBookingsByOwner(ctx context.Context, owner domain.OwnerRef, status string, limit, offset int) ([]domain.BookingRecord, int64, error) {
	args := m.Called(ctx, owner, status, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]domain.BookingRecord), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepository) MarkCancelled(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

type mockGdsRefRepository struct{ mock.Mock }

func (m *mockGdsRefRepository) SaveRef(ctx context.Context, ref domain.GdsBookingRef) error {
	return m.Called(ctx, ref).Error(0)
}

func (m *mockGdsRefRepository) GetRefByBookingID(ctx context.Context, bookingID string) (*domain.GdsBookingRef, error) {
	args := m.Called(ctx, bookingID)
	if r := args.Get(0); r != nil {
		return r.(*domain.GdsBookingRef), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOwnerRepository struct{ mock.Mock }

func (m *mockOwnerRepository) CreateUser(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	return m.Called(ctx, user, wallet).Error(0)
}

func (m *mockOwnerRepository) CreateAgent(ctx context.Context, agent domain.Agent) error {
	return m.Called(ctx, agent).Error(0)
}

func (m *mockOwnerRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnerRepository) GetAgentByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	args := m.Called(ctx, email)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnerRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnerRepository) GetAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	args := m.Called(ctx, agentID)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnerRepository) GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnerRepository) ResolveOwnerByEmail(ctx context.Context, email string) (domain.OwnerRef, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.OwnerRef), args.Error(1)
}

type mockTransactionRepository struct{ mock.Mock }

func (m *mockTransactionRepository) ApplyDelta(ctx context.Context, delta repoports.WalletDelta) (*domain.Transaction, error) {
	args := m.Called(ctx, delta)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepository) InsertUnattributed(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *mockTransactionRepository) ListTransactionsByOwner(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, owner, limit, offset)
	if txns := args.Get(0); txns != nil {
		return txns.([]domain.Transaction), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLedgerService struct{ mock.Mock }

func (m *mockLedgerService) SettleWebhook(ctx context.Context, req dto.PaymentWebhookRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerService) DebitForBooking(ctx context.Context, owner domain.OwnerRef, amount decimal.Decimal, currency string) (*domain.Transaction, error) {
	args := m.Called(ctx, owner, amount, currency)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerService) RecordAdjustment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedgerService) ListTransactions(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, owner, limit, offset)
	if txns := args.Get(0); txns != nil {
		return txns.([]domain.Transaction), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockLedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if txn := args.Get(0); txn != nil {
		return txn.(*domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}
