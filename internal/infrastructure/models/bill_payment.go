package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillPayee struct {
	ID            int64  `gorm:"column:payee_id;primaryKey;autoIncrement"`
	CustomerID    int64  `gorm:"not null;index"`
	PayeeName     string `gorm:"type:varchar(255);not null"`
	PayeeCode     string `gorm:"type:varchar(64);not null"`
	AccountNumber string `gorm:"type:varchar(64);not null"`
	PayeeStatus   string `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BillPayee) TableName() string { return "bill_payees" }

type BillPayment struct {
	ID            int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	CustomerID    int64           `gorm:"not null;index"`
	PayeeName     string          `gorm:"type:varchar(255);not null"`
	AccountNumber string          `gorm:"type:varchar(64);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FeeAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ReferenceID   string          `gorm:"type:varchar(64)"`
	SubmittedAt   time.Time       `gorm:"autoCreateTime"`
}

func (BillPayment) TableName() string { return "bill_payments" }
