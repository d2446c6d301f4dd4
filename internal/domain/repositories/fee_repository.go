package repositories

import (
	"context"

	"cardwallet.backend/internal/domain/entities"
)

// FeeRepository reads the per-client fee schedule.
type FeeRepository interface {
	Create(ctx context.Context, fee *entities.Fee) (*entities.Fee, error)
	// GetActiveFee returns the active schedule entry for an event type, or
	// ErrNotFound when the event carries no fee.
	GetActiveFee(ctx context.Context, clientID int64, eventType string) (*entities.Fee, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*entities.Fee, error)
}
