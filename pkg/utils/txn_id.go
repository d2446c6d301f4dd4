package utils

import (
	"github.com/google/uuid"
)

// GenerateTxnID mints the journal correlation id shared by a payout's
// pending and terminal rows.
func GenerateTxnID() string {
	return uuid.NewString()
}

// GenerateSessionID mints an opaque session identifier.
func GenerateSessionID() string {
	return uuid.NewString()
}
