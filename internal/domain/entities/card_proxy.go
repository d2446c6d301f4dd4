package entities

import "time"

// Client-pool proxy statuses (inventory not yet bound to a customer).
const (
	ProxyStatusAvailable = "available"
	ProxyStatusAssigned  = "assigned"
	ProxyStatusDisabled  = "disabled"
)

// Customer card statuses.
const (
	CardStatusActive    = "active"
	CardStatusSuspended = "suspended"
	CardStatusDisabled  = "disabled"
)

// ClientCardProxy is an inventory entry: a processor proxy allocated to a
// client program but not yet claimed by any customer.
type ClientCardProxy struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	Proxy     string    `json:"proxy"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerCardProxy binds a customer to an externally-held card. At most one
// row per customer may be in active status at a time.
type CustomerCardProxy struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Proxy      string    `json:"proxy"`
	Status     string    `json:"status"`
	PersonID   string    `json:"personId"`
	Last4      string    `json:"last4"`
	Expiry     string    `json:"expiry"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ActivateCardInput is the payload for claiming a pool proxy.
type ActivateCardInput struct {
	Proxy string `json:"proxy" binding:"required"`
}
