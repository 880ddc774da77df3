package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/epicquest/travel-backend/internal/core/ports/repositories"
)

// RepositoryProvider bundles all persistence implementations over one pool.
type RepositoryProvider struct {
	Bookings     portsrepo.BookingRepository
	GdsRefs      portsrepo.GdsRefRepository
	Transactions portsrepo.TransactionRepository
	Owners       portsrepo.OwnerRepository
	Currencies   portsrepo.CurrencyRepository
}

// NewRepositoryProvider wires every repository against the given pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		Bookings:     newPgxBookingRepository(pool),
		GdsRefs:      newPgxGdsRefRepository(pool),
		Transactions: newPgxTransactionRepository(pool),
		Owners:       newPgxOwnerRepository(pool),
		Currencies:   newPgxCurrencyRepository(pool),
	}
}
