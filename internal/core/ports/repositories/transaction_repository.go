package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// WalletDelta is one balance mutation to apply and journal atomically.
type WalletDelta struct {
	TransactionID string
	Owner         domain.OwnerRef
	Amount        decimal.Decimal // positive credit, negative debit
	Currency      string
	Gateway       *domain.GatewayMeta
}

// TransactionRepository is the wallet ledger. Balance mutation and journal
// insert happen in one database transaction; the balance update is a single
// conditional statement so concurrent deltas serialize on the row.
type TransactionRepository interface {
	// ApplyDelta mutates the owner's balance and records the ledger entry.
	// Returns apperrors.ErrNotFound when the owner has no balance row and
	// apperrors.ErrConflict when a debit would take the balance negative.
	ApplyDelta(ctx context.Context, delta WalletDelta) (*domain.Transaction, error)

	// InsertUnattributed journals a settlement that matched no owner. The
	// entry carries zero previous and updated amounts and mutates nothing.
	InsertUnattributed(ctx context.Context, txn domain.Transaction) error

	// ListTransactionsByOwner returns the owner's ledger entries newest
	// first, plus the total count.
	ListTransactionsByOwner(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error)

	// GetTransactionByID returns one entry or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
