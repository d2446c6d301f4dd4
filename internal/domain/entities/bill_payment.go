package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payee statuses
const (
	PayeeStatusActive   = "active"
	PayeeStatusInactive = "inactive"
)

// BillPayee is a customer-owned biller. The payee code is the remote
// partner's identifier resolved through the payee search.
type BillPayee struct {
	ID            int64     `json:"payeeId"`
	CustomerID    int64     `json:"customerId"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	AccountNumber string    `json:"accountNumber"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BillPayment is the durable local record of a submitted bill payment.
type BillPayment struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	PayeeName     string          `json:"payeeName"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	FeeAmount     decimal.Decimal `json:"feeAmount"`
	ReferenceID   string          `json:"referenceId"`
	SubmittedAt   time.Time       `json:"submittedAt"`
}

// PayeeSearchResult is one hit from the remote payee directory.
type PayeeSearchResult struct {
	Name string `json:"payeeName"`
	Code string `json:"payeeCode"`
}

// CreatePayeeInput is the payload for registering a bill payee.
type CreatePayeeInput struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}

// CreateBillPaymentInput is the payload for paying a bill.
type CreateBillPaymentInput struct {
	PayeeID int64  `json:"payeeId" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}
