package repositories

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// OwnerRepository persists the two funding-party types and the user wallets.
type OwnerRepository interface {
	// CreateUser inserts the user and its wallet row together.
	CreateUser(ctx context.Context, user domain.User, wallet domain.Wallet) error
	CreateAgent(ctx context.Context, agent domain.Agent) error

	// GetUserByEmail returns the user or apperrors.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAgentByEmail(ctx context.Context, email string) (*domain.Agent, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetAgentByID(ctx context.Context, agentID string) (*domain.Agent, error)

	// GetWalletByUserID returns the user's wallet or apperrors.ErrNotFound.
	GetWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// ResolveOwnerByEmail attributes an email to a funding party, checking
	// users before agents. Returns apperrors.ErrNotFound when neither exists.
	ResolveOwnerByEmail(ctx context.Context, email string) (domain.OwnerRef, error)
}
