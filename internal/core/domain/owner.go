package domain

import "github.com/shopspring/decimal"

// OwnerKind distinguishes the two party types that can fund bookings.
type OwnerKind string

const (
	OwnerUser  OwnerKind = "USER"
	OwnerAgent OwnerKind = "AGENT"
)

// OwnerRef points at exactly one funding party. A zero OwnerRef means the
// party could not be resolved (transient state before attribution, or an
// unattributed ledger entry).
type OwnerRef struct {
	UserID  *string `json:"userID,omitempty"`
	AgentID *string `json:"agentID,omitempty"`
}

// UserOwner builds an OwnerRef for a user.
func UserOwner(userID string) OwnerRef {
	return OwnerRef{UserID: &userID}
}

// AgentOwner builds an OwnerRef for an agent.
func AgentOwner(agentID string) OwnerRef {
	return OwnerRef{AgentID: &agentID}
}

// IsZero reports whether no party is referenced.
func (o OwnerRef) IsZero() bool {
	return o.UserID == nil && o.AgentID == nil
}

// Equals compares by referenced party, not by pointer identity.
func (o OwnerRef) Equals(other OwnerRef) bool {
	return o.Kind() == other.Kind() && o.ID() == other.ID()
}

// Kind returns the referenced party type, or "" for a zero ref.
func (o OwnerRef) Kind() OwnerKind {
	switch {
	case o.UserID != nil:
		return OwnerUser
	case o.AgentID != nil:
		return OwnerAgent
	default:
		return ""
	}
}

// ID returns the referenced party id, or "" for a zero ref.
func (o OwnerRef) ID() string {
	switch {
	case o.UserID != nil:
		return *o.UserID
	case o.AgentID != nil:
		return *o.AgentID
	default:
		return ""
	}
}

// User is a traveler account. Its wallet balance lives in a dedicated Wallet
// row and is only mutated through the ledger.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	IsVerified   bool   `json:"isVerified"`
	AuditFields
}

// Wallet is a user's balance. The amount is the only mutable field in the
// settlement core; all mutation goes through the ledger so the transaction
// chain reconstructs it exactly.
type Wallet struct {
	WalletID string          `json:"walletID"`
	UserID   string          `json:"userID"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	AuditFields
}

// Agent is a reseller account. Unlike users, an agent carries its balance
// inline.
type Agent struct {
	AgentID      string          `json:"agentID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Phone        string          `json:"phone,omitempty"`
	IsVerified   bool            `json:"isVerified"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}
