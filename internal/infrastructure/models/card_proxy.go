package models

import "time"

type ClientCardProxy struct {
	ID          int64  `gorm:"column:rec_id;primaryKey;autoIncrement"`
	ClientID    int64  `gorm:"not null;index"`
	Proxy       string `gorm:"type:varchar(64);not null;uniqueIndex"`
	ProxyStatus string `gorm:"type:varchar(32);not null;default:available"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ClientCardProxy) TableName() string { return "client_card_proxies" }

type CustomerCardProxy struct {
	ID          int64  `gorm:"column:rec_id;primaryKey;autoIncrement"`
	CustomerID  int64  `gorm:"not null;index"`
	Proxy       string `gorm:"type:varchar(64);not null;index"`
	ProxyStatus string `gorm:"type:varchar(32);not null;default:active"`
	PersonID    string `gorm:"type:varchar(64)"`
	Last4       string `gorm:"type:varchar(4)"`
	Expiry      string `gorm:"type:varchar(8)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CustomerCardProxy) TableName() string { return "customer_card_proxies" }
