package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	portsrepo "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	"github.com/epicquest/travel-backend/internal/models"
	"github.com/epicquest/travel-backend/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type PgxOwnerRepository struct {
	BaseRepository
}

func newPgxOwnerRepository(pool *pgxpool.Pool) portsrepo.OwnerRepository {
	return &PgxOwnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OwnerRepository = (*PgxOwnerRepository)(nil)

// CreateUser inserts the user and its wallet together; a user without a
// wallet row cannot settle anything.
func (r *PgxOwnerRepository) CreateUser(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	modelUser := mapping.ToModelUser(user)
	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, name, email, password_hash, phone, is_verified, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Phone,
		modelUser.IsVerified,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		return translateInsertErr(err, "user")
	}

	modelWallet := mapping.ToModelWallet(wallet)
	_, err = tx.Exec(ctx, `
		INSERT INTO wallets (wallet_id, user_id, amount, currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		modelWallet.WalletID,
		modelWallet.UserID,
		modelWallet.Amount,
		modelWallet.Currency,
		modelWallet.CreatedAt,
		modelWallet.LastUpdatedAt,
	)
	if err != nil {
		return translateInsertErr(err, "wallet")
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOwnerRepository) CreateAgent(ctx context.Context, agent domain.Agent) error {
	model := mapping.ToModelAgent(agent)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO agents (agent_id, name, email, password_hash, phone, is_verified, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		model.AgentID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.Phone,
		model.IsVerified,
		model.Amount,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		return translateInsertErr(err, "agent")
	}
	return nil
}

func translateInsertErr(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicate, what)
	}
	return fmt.Errorf("failed to create %s: %w", what, err)
}

const userColumns = `user_id, name, email, password_hash, phone, is_verified, created_at, last_updated_at`

func (r *PgxOwnerRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
}

func (r *PgxOwnerRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1;`, userID)
}

func (r *PgxOwnerRepository) findUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var model models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&model.UserID,
		&model.Name,
		&model.Email,
		&model.PasswordHash,
		&model.Phone,
		&model.IsVerified,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user := mapping.ToDomainUser(model)
	return &user, nil
}

const agentColumns = `agent_id, name, email, password_hash, phone, is_verified, amount, created_at, last_updated_at`

func (r *PgxOwnerRepository) GetAgentByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	return r.findAgent(ctx, `SELECT `+agentColumns+` FROM agents WHERE email = $1;`, email)
}

func (r *PgxOwnerRepository) GetAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	return r.findAgent(ctx, `SELECT `+agentColumns+` FROM agents WHERE agent_id = $1;`, agentID)
}

func (r *PgxOwnerRepository) findAgent(ctx context.Context, query, arg string) (*domain.Agent, error) {
	var model models.Agent
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&model.AgentID,
		&model.Name,
		&model.Email,
		&model.PasswordHash,
		&model.Phone,
		&model.IsVerified,
		&model.Amount,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	agent := mapping.ToDomainAgent(model)
	return &agent, nil
}

func (r *PgxOwnerRepository) GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	var model models.Wallet
	err := r.Pool.QueryRow(ctx, `
		SELECT wallet_id, user_id, amount, currency, created_at, last_updated_at
		FROM wallets
		WHERE user_id = $1;
	`, userID).Scan(
		&model.WalletID,
		&model.UserID,
		&model.Amount,
		&model.Currency,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet for user %s: %w", userID, err)
	}
	wallet := mapping.ToDomainWallet(model)
	return &wallet, nil
}

// ResolveOwnerByEmail attributes an email to a party, users before agents.
func (r *PgxOwnerRepository) ResolveOwnerByEmail(ctx context.Context, email string) (domain.OwnerRef, error) {
	var userID string
	err := r.Pool.QueryRow(ctx, `SELECT user_id FROM users WHERE email = $1;`, email).Scan(&userID)
	if err == nil {
		return domain.UserOwner(userID), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.OwnerRef{}, fmt.Errorf("failed to resolve owner: %w", err)
	}

	var agentID string
	err = r.Pool.QueryRow(ctx, `SELECT agent_id FROM agents WHERE email = $1;`, email).Scan(&agentID)
	if err == nil {
		return domain.AgentOwner(agentID), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.OwnerRef{}, fmt.Errorf("failed to resolve owner: %w", err)
	}
	return domain.OwnerRef{}, apperrors.ErrNotFound
}
