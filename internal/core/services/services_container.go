package services

import (
	"time"

	"github.com/epicquest/travel-backend/internal/cache"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/refdata"
)

// ServiceProvider bundles the service layer for handler registration.
type ServiceProvider struct {
	Flight   svcports.FlightService
	Hotel    svcports.HotelService
	Booking  svcports.BookingService
	Ledger   svcports.LedgerService
	Auth     svcports.AuthService
	Currency svcports.CurrencyService
}

// RepositorySet is what the service layer needs from persistence.
type RepositorySet struct {
	Bookings     repoports.BookingRepository
	GdsRefs      repoports.GdsRefRepository
	Transactions repoports.TransactionRepository
	Owners       repoports.OwnerRepository
	Currencies   repoports.CurrencyRepository
}

// NewServiceProvider wires the full service layer.
func NewServiceProvider(
	repos RepositorySet,
	provider svcports.GdsProvider,
	hotelProvider svcports.HotelProvider,
	lookup refdata.Lookup,
	searchCache cache.SearchCache,
	jwtSecret string,
	tokenExpiry time.Duration,
) *ServiceProvider {
	normalizer := NewOfferNormalizer(lookup, nil)
	ledger := NewLedgerService(repos.Transactions, repos.Owners, nil)
	currency := NewCurrencyService(repos.Currencies, nil)

	return &ServiceProvider{
		Flight:   NewFlightService(provider, normalizer, repos.Bookings, repos.GdsRefs, ledger, searchCache, nil),
		Hotel:    NewHotelService(hotelProvider, currency),
		Booking:  NewBookingService(repos.Bookings),
		Ledger:   ledger,
		Auth:     NewAuthService(repos.Owners, jwtSecret, tokenExpiry, nil),
		Currency: currency,
	}
}
