package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations spanning multiple
// repository writes. Do executes fn inside one transaction; repositories
// participate by resolving their handle from the context.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
