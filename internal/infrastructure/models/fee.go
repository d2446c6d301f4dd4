package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Fee struct {
	ID           int64           `gorm:"column:fee_id;primaryKey;autoIncrement"`
	ClientID     int64           `gorm:"not null;index"`
	EventType    string          `gorm:"type:varchar(32);not null"`
	FeeType      string          `gorm:"type:varchar(16);not null"`
	FeeValue     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	CurrencyCode string          `gorm:"type:varchar(3);not null;default:CAD"`
	FeeStatus    string          `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Fee) TableName() string { return "fees" }
