package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	uow := NewUnitOfWork(db)
	walletRepo := NewWalletRepository(db)
	auditRepo := NewWalletAuditRepository(db)
	ctx := context.Background()

	w := seedWallet(t, walletRepo, 1, 10, "operating", "100.00")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		after, err := walletRepo.Decrement(txCtx, w.ID, decimal.RequireFromString("30.00"))
		if err != nil {
			return err
		}
		_, err = auditRepo.AddEntry(txCtx, &entities.WalletAdjustment{
			WalletID:         w.ID,
			ClientID:         1,
			StoreID:          10,
			EntityID:         42,
			EntityType:       entities.EntityTypeStoreAdmin,
			AdjustmentAmount: decimal.RequireFromString("-30.00"),
			PreviousAmount:   decimal.RequireFromString("100.00"),
			TotalAmount:      after.CurrentAmount,
		})
		return err
	})
	require.NoError(t, err)

	got, err := walletRepo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentAmount.Equal(decimal.RequireFromString("70.00")))
}

func TestUnitOfWork_RollsBackBalanceAndAuditTogether(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	uow := NewUnitOfWork(db)
	walletRepo := NewWalletRepository(db)
	ctx := context.Background()

	w := seedWallet(t, walletRepo, 1, 10, "operating", "100.00")

	boom := errors.New("audit write refused")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := walletRepo.Decrement(txCtx, w.ID, decimal.RequireFromString("30.00")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The balance mutation did not survive the failed unit.
	got, err := walletRepo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentAmount.Equal(decimal.RequireFromString("100.00")))
}
