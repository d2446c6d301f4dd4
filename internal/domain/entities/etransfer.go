package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Recipient statuses
const (
	RecipientStatusActive   = "active"
	RecipientStatusInactive = "inactive"
)

// EtransferRecipient is a customer-owned counterparty for e-transfers. The
// remote partner's contact id is kept locally so the contact is registered
// with the partner only once.
type EtransferRecipient struct {
	ID               int64       `json:"recipientId"`
	CustomerID       int64       `json:"customerId"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	SecurityQuestion string      `json:"securityQuestion"`
	SecurityAnswer   string      `json:"securityAnswer"`
	DCContactID      null.String `json:"dcContactId"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// Etransfer is the durable local record of a settled transfer. The partner's
// returned transaction id is the proof of settlement.
type Etransfer struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	FeeAmount     decimal.Decimal `json:"feeAmount"`
	RecipientName string          `json:"recipientName"`
	SubmittedAt   time.Time       `json:"submittedAt"`
}

// CreateRecipientInput is the payload for registering a recipient.
type CreateRecipientInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	SecurityQuestion string `json:"securityQuestion" binding:"required"`
	SecurityAnswer   string `json:"securityAnswer" binding:"required"`
}

// SendEtransferInput is the payload for sending a transfer.
type SendEtransferInput struct {
	RecipientID int64  `json:"recipientId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}
