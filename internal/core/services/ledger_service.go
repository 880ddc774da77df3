package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
	"github.com/epicquest/travel-backend/internal/utils"
)

// ledgerService owns wallet movement. Every balance change goes through
// the repository's atomic delta so the journal chain stays exact under
// concurrency.
type ledgerService struct {
	transactions repoports.TransactionRepository
	owners       repoports.OwnerRepository
	now          func() time.Time
}

var _ svcports.LedgerService = (*ledgerService)(nil)

// NewLedgerService builds the ledger. A nil clock uses time.Now.
func NewLedgerService(transactions repoports.TransactionRepository, owners repoports.OwnerRepository, now func() time.Time) svcports.LedgerService {
	if now == nil {
		now = time.Now
	}
	return &ledgerService{transactions: transactions, owners: owners, now: now}
}

// eventAuthorisation is the gateway's spelling for a completed payment.
const eventAuthorisation = "AUTHORISATION"

// SettleWebhook credits the party matching the gateway's customer email.
// Only a successful AUTHORISATION event is recorded; declines, cancellations
// and chargebacks are acknowledged with a nil transaction and touch nothing.
// The gateway reports minor units; the ledger stores major units. A
// settlement that matches nobody is journaled unattributed so the money
// trail survives, and no balance moves.
func (s *ledgerService) SettleWebhook(ctx context.Context, req dto.PaymentWebhookRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EventCode != eventAuthorisation || req.Success != "true" {
		logger.InfoContext(ctx, "non-authorization webhook event ignored",
			slog.String("eventCode", req.EventCode),
			slog.String("reference", req.Reference),
		)
		return nil, nil
	}

	amount := decimal.NewFromInt(req.Amount).Div(decimal.NewFromInt(100))
	gateway := &domain.GatewayMeta{
		Reference:     req.Reference,
		CorrelationID: req.GatewayID,
		RiskType:      req.RiskType,
	}

	owner, err := s.owners.ResolveOwnerByEmail(ctx, req.CustomerEmail)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to attribute settlement: %w", err)
		}

		logger.WarnContext(ctx, "settlement matched no account, journaling unattributed",
			slog.String("reference", req.Reference),
		)
		txnID, err := utils.NewTransactionID()
		if err != nil {
			return nil, err
		}
		txn := domain.Transaction{
			TransactionID:  txnID,
			Currency:       req.Currency,
			Amount:         amount,
			PreviousAmount: decimal.Zero,
			UpdatedAmount:  decimal.Zero,
			Gateway:        gateway,
		}
		txn.CreatedAt = s.now()
		txn.LastUpdatedAt = txn.CreatedAt
		if err := s.transactions.InsertUnattributed(ctx, txn); err != nil {
			return nil, err
		}
		return &txn, nil
	}

	txnID, err := utils.NewTransactionID()
	if err != nil {
		return nil, err
	}
	txn, err := s.transactions.ApplyDelta(ctx, repoports.WalletDelta{
		TransactionID: txnID,
		Owner:         owner,
		Amount:        amount,
		Currency:      req.Currency,
		Gateway:       gateway,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "settlement credited",
		slog.String("transactionID", txn.TransactionID),
		slog.String("ownerKind", string(owner.Kind())),
	)
	return txn, nil
}

// DebitForBooking charges the owner. The repository rejects a debit that
// would take the balance negative with ErrConflict.
func (s *ledgerService) DebitForBooking(ctx context.Context, owner domain.OwnerRef, amount decimal.Decimal, currency string) (*domain.Transaction, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("%w: debit needs an owner", apperrors.ErrValidation)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", apperrors.ErrValidation)
	}

	txnID, err := utils.NewTransactionID()
	if err != nil {
		return nil, err
	}
	return s.transactions.ApplyDelta(ctx, repoports.WalletDelta{
		TransactionID: txnID,
		Owner:         owner,
		Amount:        amount.Neg(),
		Currency:      currency,
	})
}

// RecordAdjustment applies a signed manual balance change. The account must
// exist; the repository rejects an overdrawing debit with ErrConflict.
func (s *ledgerService) RecordAdjustment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: adjustment amount must be non-zero", apperrors.ErrValidation)
	}

	owner, err := s.owners.ResolveOwnerByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	txnID, err := utils.NewTransactionID()
	if err != nil {
		return nil, err
	}
	txn, err := s.transactions.ApplyDelta(ctx, repoports.WalletDelta{
		TransactionID: txnID,
		Owner:         owner,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "manual adjustment recorded",
		slog.String("transactionID", txn.TransactionID),
		slog.String("amount", req.Amount.String()),
	)
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error) {
	return s.transactions.ListTransactionsByOwner(ctx, owner, limit, offset)
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactions.GetTransactionByID(ctx, transactionID)
}
