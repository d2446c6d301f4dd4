package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type EtransferRecipient struct {
	ID               int64       `gorm:"column:recipient_id;primaryKey;autoIncrement"`
	CustomerID       int64       `gorm:"not null;index"`
	RecipientName    string      `gorm:"type:varchar(255);not null"`
	EmailAddress     string      `gorm:"type:varchar(255);not null"`
	SecurityQuestion string      `gorm:"type:varchar(40);not null"`
	SecurityAnswer   string      `gorm:"type:varchar(25);not null"`
	DCContactID      null.String `gorm:"column:dc_contact_id;type:varchar(64)"`
	RecipientStatus  string      `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (EtransferRecipient) TableName() string { return "etransfer_recipients" }

type Etransfer struct {
	ID            int64           `gorm:"column:rec_id;primaryKey;autoIncrement"`
	CustomerID    int64           `gorm:"not null;index"`
	TransactionID string          `gorm:"type:varchar(64);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FeeAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	RecipientName string          `gorm:"type:varchar(255);not null"`
	SubmittedAt   time.Time       `gorm:"autoCreateTime"`
}

func (Etransfer) TableName() string { return "etransfers" }
