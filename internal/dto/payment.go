package dto

import "github.com/shopspring/decimal"

// PaymentWebhookRequest is the gateway settlement callback. Amount arrives in
// minor units (cents) and is converted to major units before the ledger write.
// Success is the gateway's stringly-typed boolean; only a successful
// AUTHORISATION event moves money.
type PaymentWebhookRequest struct {
	EventCode     string `json:"eventCode" binding:"required"`
	Success       string `json:"success" binding:"required,oneof=true false"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Currency      string `json:"currency" binding:"required,len=3"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	Reference     string `json:"reference" binding:"required"`
	GatewayID     string `json:"gatewayID" binding:"required"`
	RiskType      string `json:"paymentRiskType"`
}

// CreateTransactionRequest is a back-office ledger adjustment. Amount is in
// major units and signed; a negative amount debits the account.
type CreateTransactionRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
}
