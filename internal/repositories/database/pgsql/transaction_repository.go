package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	portsrepo "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	"github.com/epicquest/travel-backend/internal/models"
	"github.com/epicquest/travel-backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, currency, amount, previous_amount, updated_amount,
	user_id, agent_id, gateway_reference, gateway_id, risk_type, created_at, last_updated_at`

// ApplyDelta mutates the balance and journals the entry in one database
// transaction. The balance moves via a single conditional UPDATE, so
// concurrent deltas on the same owner serialize on the row and the returned
// amount is exact.
func (r *PgxTransactionRepository) ApplyDelta(ctx context.Context, delta portsrepo.WalletDelta) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	updated, err := r.applyBalance(ctx, tx, delta)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  delta.TransactionID,
		Currency:       delta.Currency,
		Amount:         delta.Amount,
		PreviousAmount: updated.Sub(delta.Amount),
		UpdatedAmount:  updated,
		Owner:          delta.Owner,
		Gateway:        delta.Gateway,
	}
	txn.CreatedAt = now
	txn.LastUpdatedAt = now

	if err := insertTransaction(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) applyBalance(ctx context.Context, tx pgx.Tx, delta portsrepo.WalletDelta) (decimal.Decimal, error) {
	var query, checkQuery, ownerID string
	switch {
	case delta.Owner.UserID != nil:
		ownerID = *delta.Owner.UserID
		query = `
			UPDATE wallets
			SET amount = amount + $2, last_updated_at = NOW()
			WHERE user_id = $1 AND amount + $2 >= 0
			RETURNING amount;
		`
		checkQuery = `SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1);`
	case delta.Owner.AgentID != nil:
		ownerID = *delta.Owner.AgentID
		query = `
			UPDATE agents
			SET amount = amount + $2, last_updated_at = NOW()
			WHERE agent_id = $1 AND amount + $2 >= 0
			RETURNING amount;
		`
		checkQuery = `SELECT EXISTS(SELECT 1 FROM agents WHERE agent_id = $1);`
	default:
		return decimal.Zero, fmt.Errorf("%w: delta names no owner", apperrors.ErrValidation)
	}

	var updated decimal.Decimal
	err := tx.QueryRow(ctx, query, ownerID, delta.Amount).Scan(&updated)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("failed to apply balance delta: %w", err)
	}

	// no row updated: either the owner is missing or the debit would
	// overdraw
	var exists bool
	if err := tx.QueryRow(ctx, checkQuery, ownerID).Scan(&exists); err != nil {
		return decimal.Zero, fmt.Errorf("failed to check balance owner: %w", err)
	}
	if !exists {
		return decimal.Zero, apperrors.ErrNotFound
	}
	return decimal.Zero, fmt.Errorf("%w: insufficient balance", apperrors.ErrConflict)
}

func (r *PgxTransactionRepository) InsertUnattributed(ctx context.Context, txn domain.Transaction) error {
	if !txn.Owner.IsZero() {
		return fmt.Errorf("%w: unattributed entry must not name an owner", apperrors.ErrValidation)
	}
	return insertTransaction(ctx, r.Pool, mapping.ToModelTransaction(txn))
}

// pgxExecutor is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertTransaction(ctx context.Context, db pgxExecutor, model models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := db.Exec(ctx, query,
		model.TransactionID,
		model.Currency,
		model.Amount,
		model.PreviousAmount,
		model.UpdatedAmount,
		model.UserID,
		model.AgentID,
		model.GatewayReference,
		model.GatewayID,
		model.RiskType,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to journal transaction %s: %w", model.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, owner domain.OwnerRef, limit, offset int) ([]domain.Transaction, int64, error) {
	filter, ownerID := ownerFilter(owner)
	if ownerID == "" {
		return nil, 0, fmt.Errorf("%w: listing needs an owner", apperrors.ErrValidation)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		model, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(model))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, total, nil
}

func (r *PgxTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	model, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(model)
	return &txn, nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Currency,
		&m.Amount,
		&m.PreviousAmount,
		&m.UpdatedAmount,
		&m.UserID,
		&m.AgentID,
		&m.GatewayReference,
		&m.GatewayID,
		&m.RiskType,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}
