package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction rows are append-only; rec_id is the monotonic sequence that
// orders lifecycle steps within a txn id.
type Transaction struct {
	ID           int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	TxnID        string          `gorm:"type:varchar(64);not null;index"`
	CustomerID   int64           `gorm:"not null;index"`
	Proxy        string          `gorm:"type:varchar(64);not null"`
	EntityID     int64           `gorm:"not null"`
	EntityType   string          `gorm:"type:varchar(32);not null"`
	EventType    string          `gorm:"type:varchar(32);not null"`
	CurrencyCode string          `gorm:"type:varchar(3);not null"`
	TxnAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TxnStatus    string          `gorm:"type:varchar(16);not null"`
	Description  string          `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

func (Transaction) TableName() string { return "transactions" }
