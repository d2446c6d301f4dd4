package repositories

import (
	"context"

	"cardwallet.backend/internal/domain/entities"
)

// CustomerCardProxyRepository resolves customers to their externally-held
// cards.
type CustomerCardProxyRepository interface {
	Create(ctx context.Context, binding *entities.CustomerCardProxy) (*entities.CustomerCardProxy, error)
	ChangeStatus(ctx context.Context, proxy, status string) (*entities.CustomerCardProxy, error)
	// GetActiveProxy returns the single active card bound to the customer, or
	// ErrNotFound.
	GetActiveProxy(ctx context.Context, customerID int64) (*entities.CustomerCardProxy, error)
	ViewCustomerProxy(ctx context.Context, customerID int64, proxy string) (*entities.CustomerCardProxy, error)
}

// ClientCardProxyRepository manages the client-level card inventory.
type ClientCardProxyRepository interface {
	Create(ctx context.Context, clientID int64, proxy, status string) (*entities.ClientCardProxy, error)
	// MarkAssigned transitions a pool proxy from available to assigned. The
	// update is conditional on the current status so exactly one of two
	// concurrent claims can win; the loser gets ErrNotFound.
	MarkAssigned(ctx context.Context, proxy string) (*entities.ClientCardProxy, error)
	ChangeStatus(ctx context.Context, proxy, status string) (*entities.ClientCardProxy, error)
	GetByProxy(ctx context.Context, proxy string) (*entities.ClientCardProxy, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error)
}
