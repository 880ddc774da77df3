package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
	"github.com/epicquest/travel-backend/internal/utils"
)

const defaultWalletCurrency = "USD"

type ownerClaims struct {
	Kind domain.OwnerKind `json:"kind"`
	jwt.RegisteredClaims
}

type authService struct {
	owners      repoports.OwnerRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
	now         func() time.Time
}

var _ svcports.AuthService = (*authService)(nil)

// NewAuthService builds registration and authentication. A zero expiry
// defaults to 24h; a nil clock uses time.Now.
func NewAuthService(owners repoports.OwnerRepository, jwtSecret string, tokenExpiry time.Duration, now func() time.Time) svcports.AuthService {
	if tokenExpiry <= 0 {
		tokenExpiry = 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &authService{
		owners:      owners,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
		now:         now,
	}
}

func (s *authService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.owners.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	user.CreatedAt = s.now()
	user.LastUpdatedAt = user.CreatedAt

	wallet := domain.Wallet{
		WalletID: uuid.NewString(),
		UserID:   user.UserID,
		Amount:   decimal.Zero,
		Currency: defaultWalletCurrency,
	}
	wallet.CreatedAt = user.CreatedAt
	wallet.LastUpdatedAt = user.CreatedAt

	if err := s.owners.CreateUser(ctx, user, wallet); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "user registered", slog.String("userID", user.UserID))
	return &user, nil
}

func (s *authService) RegisterAgent(ctx context.Context, req dto.RegisterAgentRequest) (*domain.Agent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.owners.GetAgentByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	agent := domain.Agent{
		AgentID:      uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Amount:       decimal.Zero,
	}
	agent.CreatedAt = s.now()
	agent.LastUpdatedAt = agent.CreatedAt

	if err := s.owners.CreateAgent(ctx, agent); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "agent registered", slog.String("agentID", agent.AgentID))
	return &agent, nil
}

// Login authenticates by email, users before agents. A wrong password and an
// unknown email are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if user, err := s.owners.GetUserByEmail(ctx, req.Email); err == nil {
		if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		token, err := s.signToken(domain.OwnerUser, user.UserID)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token:     token,
			OwnerKind: domain.OwnerUser,
			OwnerID:   user.UserID,
			Name:      user.Name,
			Email:     user.Email,
		}, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	agent, err := s.owners.GetAgentByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, agent.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, err := s.signToken(domain.OwnerAgent, agent.AgentID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		OwnerKind: domain.OwnerAgent,
		OwnerID:   agent.AgentID,
		Name:      agent.Name,
		Email:     agent.Email,
	}, nil
}

func (s *authService) signToken(kind domain.OwnerKind, ownerID string) (string, error) {
	now := s.now()
	claims := ownerClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *authService) VerifyToken(_ context.Context, token string) (domain.OwnerRef, error) {
	var claims ownerClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return domain.OwnerRef{}, fmt.Errorf("%w: invalid token", apperrors.ErrForbidden)
	}

	switch claims.Kind {
	case domain.OwnerUser:
		return domain.UserOwner(claims.Subject), nil
	case domain.OwnerAgent:
		return domain.AgentOwner(claims.Subject), nil
	default:
		return domain.OwnerRef{}, fmt.Errorf("%w: token names no party", apperrors.ErrForbidden)
	}
}
