package services

import (
	"context"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/dto"
)

// AuthService registers and authenticates funding parties.
type AuthService interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	RegisterAgent(ctx context.Context, req dto.RegisterAgentRequest) (*domain.Agent, error)

	// Login authenticates by email, users before agents, and returns a
	// signed bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// VerifyToken validates a bearer token and returns the owner it names.
	VerifyToken(ctx context.Context, token string) (domain.OwnerRef, error)
}
