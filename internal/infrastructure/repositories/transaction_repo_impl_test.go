package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
)

func seedPayout(t *testing.T, repo *TransactionRepositoryImpl, txnID string) *entities.PayoutTxn {
	t.Helper()
	created, err := repo.CreatePayout(context.Background(), &entities.PayoutTxn{
		TxnID:        txnID,
		CustomerID:   5,
		Proxy:        "7000123",
		EntityID:     42,
		EntityType:   entities.EntityTypeStoreAdmin,
		EventType:    entities.EventTypeCardLoad,
		CurrencyCode: entities.CurrencyCAD,
		Amount:       decimal.RequireFromString("20.00"),
		Status:       entities.TxnStatusPending,
		Description:  "shift payout",
	})
	require.NoError(t, err)
	return created
}

func TestTransactionRepository_JournalIsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	txnID := uuid.NewString()
	pending := seedPayout(t, repo, txnID)
	require.Equal(t, entities.TxnStatusPending, pending.Status)

	done, err := repo.CompletePayout(ctx, txnID, 5, entities.EntityTypeCustomer, entities.TxnStatusComplete)
	require.NoError(t, err)
	require.Equal(t, entities.TxnStatusComplete, done.Status)
	require.Greater(t, done.RecID, pending.RecID)

	// The terminal row carries the payload forward but records the
	// completing actor.
	require.Equal(t, pending.CustomerID, done.CustomerID)
	require.Equal(t, pending.Proxy, done.Proxy)
	require.True(t, done.Amount.Equal(pending.Amount))
	require.Equal(t, pending.CurrencyCode, done.CurrencyCode)
	require.Equal(t, pending.Description, done.Description)
	require.Equal(t, int64(5), done.EntityID)
	require.Equal(t, entities.EntityTypeCustomer, done.EntityType)

	rows, err := repo.GetByTxnID(ctx, txnID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, entities.TxnStatusPending, rows[0].Status)
	require.Equal(t, entities.TxnStatusComplete, rows[1].Status)
}

func TestTransactionRepository_CompleteUnknownTxn(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)

	_, err := repo.CompletePayout(context.Background(), uuid.NewString(), 1, entities.EntityTypeCustomer, entities.TxnStatusComplete)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByTxnID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTransactionRepository_GetStalePending(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	staleID := uuid.NewString()
	settledID := uuid.NewString()
	seedPayout(t, repo, staleID)
	seedPayout(t, repo, settledID)

	_, err := repo.CompletePayout(ctx, settledID, 5, entities.EntityTypeCustomer, entities.TxnStatusComplete)
	require.NoError(t, err)

	stale, err := repo.GetStalePending(ctx, time.Now().Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, staleID, stale[0].TxnID)

	// Nothing is stale before the rows were written.
	stale, err = repo.GetStalePending(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Empty(t, stale)
}
