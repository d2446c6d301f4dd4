package entities

import "time"

// Customer is a cardholder enrolled under a client program.
type Customer struct {
	ID        int64     `json:"customerId"`
	ClientID  int64     `json:"clientId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
