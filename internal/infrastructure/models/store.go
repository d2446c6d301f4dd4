package models

import "time"

type Store struct {
	ID          int64  `gorm:"column:store_id;primaryKey;autoIncrement"`
	ClientID    int64  `gorm:"not null;index"`
	StoreName   string `gorm:"type:varchar(255);not null"`
	StoreStatus string `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Store) TableName() string { return "stores" }

type Client struct {
	ID           int64  `gorm:"column:client_id;primaryKey;autoIncrement"`
	ClientName   string `gorm:"type:varchar(255);not null"`
	ClientStatus string `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Client) TableName() string { return "clients" }

type Customer struct {
	ID             int64  `gorm:"column:customer_id;primaryKey;autoIncrement"`
	ClientID       int64  `gorm:"not null;index"`
	FirstName      string `gorm:"type:varchar(255);not null"`
	LastName       string `gorm:"type:varchar(255);not null"`
	Email          string `gorm:"type:varchar(255);not null"`
	City           string `gorm:"type:varchar(255)"`
	Country        string `gorm:"type:varchar(2);default:ca"`
	CustomerStatus string `gorm:"type:varchar(32);not null;default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Customer) TableName() string { return "customers" }
