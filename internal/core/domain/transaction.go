package domain

import "github.com/shopspring/decimal"

// GatewayMeta carries the payment-gateway fields present only on
// gateway-originated ledger entries.
type GatewayMeta struct {
	Reference     string `json:"gatewayReference"`
	CorrelationID string `json:"gatewayID"`
	RiskType      string `json:"paymentRiskType"`
}

// Transaction is one append-only ledger entry. For a given owner, ordering
// entries by creation time, UpdatedAmount[i] == PreviousAmount[i] + Amount[i]
// and PreviousAmount[i+1] == UpdatedAmount[i]: replaying the chain
// reconstructs the wallet balance exactly.
type Transaction struct {
	TransactionID  string          `json:"transactionID"`
	Currency       string          `json:"currency"`
	Amount         decimal.Decimal `json:"amount"`
	PreviousAmount decimal.Decimal `json:"previousAmount"`
	UpdatedAmount  decimal.Decimal `json:"updatedAmount"`
	Owner          OwnerRef        `json:"owner"`
	Gateway        *GatewayMeta    `json:"gateway,omitempty"`
	AuditFields
}
