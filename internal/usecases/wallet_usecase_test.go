package usecases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/usecases"
)

type walletMocks struct {
	wallets *MockWalletRepository
	audits  *MockWalletAuditRepository
	stores  *MockStoreRepository
	clients *MockClientRepository
	uow     *MockUnitOfWork
}

func newWalletUsecase() (*usecases.WalletUsecase, *walletMocks) {
	m := &walletMocks{
		wallets: new(MockWalletRepository),
		audits:  new(MockWalletAuditRepository),
		stores:  new(MockStoreRepository),
		clients: new(MockClientRepository),
		uow:     new(MockUnitOfWork),
	}
	uc := usecases.NewWalletUsecase(m.wallets, m.audits, m.stores, m.clients, m.uow)
	return uc, m
}

func TestWalletUsecase_FundWallet_WritesPairedAudit(t *testing.T) {
	uc, m := newWalletUsecase()
	ctx := context.Background()

	wallet := storeWallet(5, 9, "100.00")
	adjustment := decimal.RequireFromString("-20.00")

	m.wallets.On("GetClientStoreWallet", ctx, int64(1), int64(9), int64(5)).Return(wallet, nil)
	m.stores.On("GetByID", ctx, int64(9)).Return(&entities.Store{ID: 9, Name: "Queen West"}, nil)
	m.clients.On("GetByID", ctx, int64(1)).Return(&entities.Client{ID: 1, Name: "Acme Promo"}, nil)
	m.uow.On("Do", ctx, mock.Anything).Return(nil)
	m.wallets.On("Increment", ctx, int64(5), decEq(adjustment)).
		Return(storeWallet(5, 9, "80.00"), nil)
	m.audits.On("AddEntry", ctx, mock.MatchedBy(func(e *entities.WalletAdjustment) bool {
		return e.WalletID == 5 &&
			e.ClientName == "Acme Promo" &&
			e.StoreName == "Queen West" &&
			e.AdjustmentAmount.Equal(adjustment) &&
			e.PreviousAmount.Equal(decimal.RequireFromString("100.00")) &&
			e.TotalAmount.Equal(decimal.RequireFromString("80.00"))
	})).Return(&entities.WalletAdjustment{ID: 1}, nil)

	updated, err := uc.FundWallet(ctx, 1, 9, 5, adjustment, 7, entities.EntityTypeCompanyAdmin)
	require.NoError(t, err)
	require.True(t, updated.CurrentAmount.Equal(decimal.RequireFromString("80.00")))

	// Exactly one audit row per balance mutation.
	m.audits.AssertNumberOfCalls(t, "AddEntry", 1)
}

func TestWalletUsecase_FundWallet_WrongClient(t *testing.T) {
	uc, m := newWalletUsecase()
	ctx := context.Background()

	m.wallets.On("GetClientStoreWallet", ctx, int64(2), int64(9), int64(5)).
		Return(nil, domainerrors.ErrNotFound)

	_, err := uc.FundWallet(ctx, 2, 9, 5, decimal.RequireFromString("10.00"), 7, entities.EntityTypeCompanyAdmin)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeWalletClientMismatch, appErr.Code)

	m.wallets.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletUsecase_AddWallet(t *testing.T) {
	uc, m := newWalletUsecase()
	ctx := context.Background()

	m.stores.On("GetByID", ctx, int64(9)).Return(&entities.Store{ID: 9, Name: "Queen West"}, nil)
	m.wallets.On("Create", ctx, mock.MatchedBy(func(w *entities.Wallet) bool {
		return w.Status == entities.WalletStatusActive &&
			w.AlertAmount.Equal(decimal.RequireFromString("25.00"))
	})).Return(nil)

	_, err := uc.AddWallet(ctx, &entities.AddWalletInput{
		ClientID: 1, StoreID: 9, Name: "ops float", AlertAmount: "25.00",
	})
	require.NoError(t, err)

	_, err = uc.AddWallet(ctx, &entities.AddWalletInput{
		ClientID: 1, StoreID: 9, Name: "ops float", AlertAmount: "not-a-number",
	})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeWalletUnableToCreate, appErr.Code)
}

func TestWalletUsecase_StoreBalance(t *testing.T) {
	uc, m := newWalletUsecase()
	ctx := context.Background()

	m.wallets.On("SumByStore", ctx, int64(9)).Return(decimal.RequireFromString("60.00"), nil)

	got, err := uc.StoreBalance(ctx, 9)
	require.NoError(t, err)
	require.True(t, got.Equal(decimal.RequireFromString("60.00")))
}
