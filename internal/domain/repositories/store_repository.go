package repositories

import (
	"context"

	"cardwallet.backend/internal/domain/entities"
)

// StoreRepository reads store records.
type StoreRepository interface {
	GetByID(ctx context.Context, storeID int64) (*entities.Store, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*entities.Store, error)
}

// ClientRepository reads client (program owner) records.
type ClientRepository interface {
	GetByID(ctx context.Context, clientID int64) (*entities.Client, error)
}

// CustomerRepository reads customer records.
type CustomerRepository interface {
	GetByID(ctx context.Context, customerID int64) (*entities.Customer, error)
}
