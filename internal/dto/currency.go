package dto

import "github.com/shopspring/decimal"

// UpsertCurrencyRequest creates or replaces a display-conversion rate.
type UpsertCurrencyRequest struct {
	Currency string          `json:"currency" binding:"required,len=3,alpha"`
	Value    decimal.Decimal `json:"value" binding:"required"`
}
