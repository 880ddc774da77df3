// Package models holds the database row shapes. Domain conversion lives in
// utils/mapping; repositories never hand these types upward.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	UserID        string
	Name          string
	Email         string
	PasswordHash  string
	Phone         string
	IsVerified    bool
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

type Wallet struct {
	WalletID      string
	UserID        string
	Amount        decimal.Decimal
	Currency      string
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

type Agent struct {
	AgentID       string
	Name          string
	Email         string
	PasswordHash  string
	Phone         string
	IsVerified    bool
	Amount        decimal.Decimal
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// Booking keeps the offer snapshot and travelers as JSONB: they are frozen
// at creation and only read back whole.
type Booking struct {
	BookingID       string
	OfferID         string
	System          string
	Status          string
	BookingDateTime string
	TripType        string
	GdsPNR          string
	AirlinePNR      string
	Offer           []byte
	Travellers      []byte
	UserID          *string
	AgentID         *string
	CreatedAt       time.Time
	LastUpdatedAt   time.Time
}

type GdsBookingRef struct {
	BookingID       string
	GdsID           string
	QueuingOfficeID string
	CreatedAt       time.Time
	LastUpdatedAt   time.Time
}

type Transaction struct {
	TransactionID    string
	Currency         string
	Amount           decimal.Decimal
	PreviousAmount   decimal.Decimal
	UpdatedAmount    decimal.Decimal
	UserID           *string
	AgentID          *string
	GatewayReference *string
	GatewayID        *string
	RiskType         *string
	CreatedAt        time.Time
	LastUpdatedAt    time.Time
}

type Currency struct {
	Code          string
	Value         decimal.Decimal
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
