package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet statuses
const (
	WalletStatusActive   = "active"
	WalletStatusInactive = "inactive"
)

// Wallet represents a pooled balance belonging to a (client, store) pair.
// The balance is only ever mutated through the wallet ledger's atomic
// increment/decrement/set operations, each paired with a WalletAdjustment row.
type Wallet struct {
	ID            int64           `json:"walletId"`
	ClientID      int64           `json:"clientId"`
	StoreID       int64           `json:"storeId"`
	Status        string          `json:"status"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	AlertAmount   decimal.Decimal `json:"alertAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// WalletAdjustment is one immutable audit row recording a single balance
// change: previous amount, signed adjustment, and the resulting total, plus
// denormalized client/store/actor names so the trail survives entity edits.
type WalletAdjustment struct {
	ID               int64           `json:"id"`
	WalletID         int64           `json:"walletId"`
	WalletName       string          `json:"walletName"`
	ClientID         int64           `json:"clientId"`
	ClientName       string          `json:"clientName"`
	StoreID          int64           `json:"storeId"`
	StoreName        string          `json:"storeName"`
	EntityID         int64           `json:"entityId"`
	EntityType       string          `json:"entityType"`
	EntityName       string          `json:"entityName"`
	AdjustmentAmount decimal.Decimal `json:"adjustmentAmount"`
	PreviousAmount   decimal.Decimal `json:"previousAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// AddWalletInput is the payload for creating a store wallet.
type AddWalletInput struct {
	ClientID    int64  `json:"clientId" binding:"required"`
	StoreID     int64  `json:"storeId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	AlertAmount string `json:"alertAmount"`
}

// FundWalletInput is the payload for a manual balance adjustment.
type FundWalletInput struct {
	ClientID   int64  `json:"clientId" binding:"required"`
	StoreID    int64  `json:"storeId" binding:"required"`
	WalletID   int64  `json:"walletId" binding:"required"`
	Adjustment string `json:"adjustment" binding:"required"`
}
