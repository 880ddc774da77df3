package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	bookingIDPrefix     = "EPQB"
	transactionIDPrefix = "EPQT"
)

// mintID builds prefix + last four digits of the unix-millisecond clock +
// three cryptographically random digits. Eleven characters total.
func mintID(prefix string, now time.Time) (string, error) {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	suffix := millis[len(millis)-4:]

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random id component: %w", err)
	}
	return fmt.Sprintf("%s%s%03d", prefix, suffix, n.Int64()), nil
}

// NewBookingID mints a customer-facing booking reference.
func NewBookingID() (string, error) {
	return mintID(bookingIDPrefix, time.Now())
}

// NewTransactionID mints a ledger entry reference.
func NewTransactionID() (string, error) {
	return mintID(transactionIDPrefix, time.Now())
}
