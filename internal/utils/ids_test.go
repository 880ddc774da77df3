package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintID_Format(t *testing.T) {
	now := time.UnixMilli(1717171717123)

	id, err := mintID("EPQB", now)
	require.NoError(t, err)

	assert.Len(t, id, 11)
	assert.Equal(t, "EPQB", id[:4])
	// clock component is the last four digits of the millisecond timestamp
	assert.Equal(t, "7123", id[4:8])
	assert.Regexp(t, `^\d{3}$`, id[8:])
}

func TestNewBookingID_Prefix(t *testing.T) {
	id, err := NewBookingID()
	require.NoError(t, err)
	assert.Regexp(t, `^EPQB\d{7}$`, id)
}

func TestNewTransactionID_Prefix(t *testing.T) {
	id, err := NewTransactionID()
	require.NoError(t, err)
	assert.Regexp(t, `^EPQT\d{7}$`, id)
}
