package entities

import "time"

// Store is a program-owner location that holds pooled wallets.
type Store struct {
	ID        int64     `json:"storeId"`
	ClientID  int64     `json:"clientId"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Client is a program owner.
type Client struct {
	ID        int64     `json:"clientId"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
