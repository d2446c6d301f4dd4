package repositories

import (
	"context"
	"time"

	"cardwallet.backend/internal/domain/entities"
)

// TransactionRepository is the append-only payout journal. A lifecycle step is
// a new row for the same txn id, never an in-place update; the monotonic
// record id makes "latest row" unambiguous under concurrent writers.
type TransactionRepository interface {
	// CreatePayout appends the initial pending row.
	CreatePayout(ctx context.Context, txn *entities.PayoutTxn) (*entities.PayoutTxn, error)
	// CompletePayout re-reads the latest row for txnID, carries its
	// customer/proxy/amount/currency/description fields forward, and appends a
	// new row with the given status and the completing actor. ErrNotFound when
	// no prior row exists.
	CompletePayout(ctx context.Context, txnID string, entityID int64, entityType, status string) (*entities.PayoutTxn, error)
	// GetByTxnID returns the journal rows for a txn id in creation order.
	GetByTxnID(ctx context.Context, txnID string) ([]*entities.PayoutTxn, error)
	// GetStalePending returns txn ids whose latest row is still pending and
	// older than the cutoff, for the reconciliation job.
	GetStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.PayoutTxn, error)
}
