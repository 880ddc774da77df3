package dto

import "github.com/epicquest/travel-backend/internal/core/domain"

// RegisterUserRequest creates a traveler account with an empty wallet.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,min=6,max=20"`
}

// RegisterAgentRequest creates a reseller account with an inline balance.
type RegisterAgentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,min=6,max=20"`
}

// LoginRequest authenticates a user or agent by email.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed bearer token and the resolved party.
type LoginResponse struct {
	Token     string           `json:"token"`
	OwnerKind domain.OwnerKind `json:"ownerKind"`
	OwnerID   string           `json:"ownerID"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
}
