package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/core/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/utils"
)

func newAuthFixture(t *testing.T) (*mockOwnerRepository, svcports.AuthService) {
	t.Helper()
	owners := new(mockOwnerRepository)
	now := func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }
	return owners, services.NewAuthService(owners, "test-secret", time.Hour, now)
}

func TestRegisterUser_CreatesWalletAlongside(t *testing.T) {
	owners, svc := newAuthFixture(t)
	owners.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound)
	owners.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash != "" && u.PasswordHash != "hunter2secret"
	}), mock.MatchedBy(func(w domain.Wallet) bool {
		return w.Amount.IsZero() && w.Currency == "USD"
	})).Return(nil)

	user, err := svc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	owners.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	owners, svc := newAuthFixture(t)
	owners.On("GetUserByEmail", mock.Anything, mock.Anything).Return(&domain.User{UserID: "u-1"}, nil)

	_, err := svc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Name: "Dup", Email: "dup@example.com", Password: "hunter2secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	owners.AssertNotCalled(t, "CreateUser")
}

func TestLogin_UserTakesPrecedenceOverAgent(t *testing.T) {
	owners, svc := newAuthFixture(t)
	hash, err := utils.HashPassword("hunter2secret")
	require.NoError(t, err)

	owners.On("GetUserByEmail", mock.Anything, "both@example.com").
		Return(&domain.User{UserID: "u-1", Name: "User", Email: "both@example.com", PasswordHash: hash}, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "both@example.com", Password: "hunter2secret"})
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerUser, resp.OwnerKind)
	assert.Equal(t, "u-1", resp.OwnerID)
	owners.AssertNotCalled(t, "GetAgentByEmail")
}

func TestLogin_FallsBackToAgent(t *testing.T) {
	owners, svc := newAuthFixture(t)
	hash, err := utils.HashPassword("agentpass123")
	require.NoError(t, err)

	owners.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound)
	owners.On("GetAgentByEmail", mock.Anything, "agent@example.com").
		Return(&domain.Agent{AgentID: "a-1", Name: "Agent", Email: "agent@example.com", PasswordHash: hash}, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "agent@example.com", Password: "agentpass123"})
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerAgent, resp.OwnerKind)
}

func TestLogin_WrongPassword(t *testing.T) {
	owners, svc := newAuthFixture(t)
	hash, err := utils.HashPassword("correct-pass")
	require.NoError(t, err)

	owners.On("GetUserByEmail", mock.Anything, mock.Anything).
		Return(&domain.User{UserID: "u-1", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "u@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	owners, svc := newAuthFixture(t)
	hash, err := utils.HashPassword("hunter2secret")
	require.NoError(t, err)
	owners.On("GetUserByEmail", mock.Anything, mock.Anything).
		Return(&domain.User{UserID: "u-1", PasswordHash: hash}, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "u@example.com", Password: "hunter2secret"})
	require.NoError(t, err)

	owner, err := svc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerUser, owner.Kind())
	assert.Equal(t, "u-1", owner.ID())
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, svc := newAuthFixture(t)
	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
