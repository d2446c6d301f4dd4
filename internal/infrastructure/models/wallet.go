package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID            int64           `gorm:"column:wallet_id;primaryKey;autoIncrement"`
	ClientID      int64           `gorm:"not null;index"`
	StoreID       int64           `gorm:"not null;index"`
	WalletStatus  string          `gorm:"type:varchar(32);not null;default:active"`
	WalletName    string          `gorm:"type:varchar(255);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AlertAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Wallet) TableName() string { return "wallets" }

// WalletAdjustment rows are append-only; client/store/actor names are
// denormalized so the audit trail survives later entity edits.
type WalletAdjustment struct {
	ID               int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	WalletID         int64           `gorm:"not null;index"`
	WalletName       string          `gorm:"type:varchar(255)"`
	ClientID         int64           `gorm:"not null"`
	ClientName       string          `gorm:"type:varchar(255)"`
	StoreID          int64           `gorm:"not null;index"`
	StoreName        string          `gorm:"type:varchar(255)"`
	EntityID         int64           `gorm:"not null"`
	EntityType       string          `gorm:"type:varchar(32);not null"`
	EntityName       string          `gorm:"type:varchar(255)"`
	AdjustmentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreviousAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time
}

func (WalletAdjustment) TableName() string { return "wallet_adjustments_history" }
