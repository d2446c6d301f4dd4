package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal statuses. A payout's lifecycle is a pair of rows sharing a txn id:
// a pending row at creation and a complete row once the processor confirms.
const (
	TxnStatusPending  = "pending"
	TxnStatusComplete = "complete"
)

// Event types recorded in the journal.
const (
	EventTypeCardLoad      = "card-load"
	EventTypeSendEtransfer = "send-etransfer"
	EventTypeBillPayment   = "bill-payment"
)

// Currencies
const (
	CurrencyCAD = "CAD"
	CurrencyUSD = "USD"
)

// Acting entity types.
const (
	EntityTypeSuperAdmin   = "super-admin"
	EntityTypeCompanyAdmin = "company-admin"
	EntityTypeStoreAdmin   = "store-admin"
	EntityTypeCustomer     = "customer"
)

// PayoutTxn is one append-only journal row. State transitions append a new
// row for the same txn id rather than updating in place; the latest row by
// record id is the authoritative current state.
type PayoutTxn struct {
	RecID        int64           `json:"recId"`
	TxnID        string          `json:"payoutId"`
	CustomerID   int64           `json:"customerId"`
	Proxy        string          `json:"proxy"`
	EntityID     int64           `json:"actorId"`
	EntityType   string          `json:"actorType"`
	EventType    string          `json:"payoutType"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreatePayoutInput is the payload for starting a payout.
type CreatePayoutInput struct {
	CustomerID  int64  `json:"customerId" binding:"required"`
	StoreID     int64  `json:"storeId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}
