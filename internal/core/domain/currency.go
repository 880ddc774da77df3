package domain

import "github.com/shopspring/decimal"

// Currency is a display-conversion entry maintained by back office: the rate
// applied when quoting fares in a non-settlement currency.
type Currency struct {
	Code  string          `json:"currency"`
	Value decimal.Decimal `json:"value"`
	AuditFields
}
