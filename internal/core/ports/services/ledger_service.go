package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/dto"
)

// LedgerService owns all wallet movement. Every mutation produces exactly one
// journal entry whose before/after amounts chain per owner.
type LedgerService interface {
	// SettleWebhook credits the party matching the gateway's customer email.
	// Events other than a successful authorization are acknowledged with a
	// nil transaction and recorded nowhere. When no party matches, the
	// settlement is journaled unattributed and no balance moves.
	SettleWebhook(ctx context.Context, req dto.PaymentWebhookRequest) (*domain.Transaction, error)

	// DebitForBooking charges the owner the booking's net price. Returns
	// apperrors.ErrConflict when funds are insufficient.
	DebitForBooking(ctx context.Context, owner domain.OwnerRef, amount decimal.Decimal, currency string) (*domain.Transaction, error)

	// RecordAdjustment applies a signed back-office balance change to the
	// party matching the email. Unlike webhook settlement, an unknown email
	// is rejected with apperrors.ErrNotFound.
	RecordAdjustment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	ListTransactions(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
