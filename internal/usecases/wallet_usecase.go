package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/repositories"
)

// WalletUsecase handles store wallet management.
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	auditRepo  repositories.WalletAuditRepository
	storeRepo  repositories.StoreRepository
	clientRepo repositories.ClientRepository
	uow        repositories.UnitOfWork
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	auditRepo repositories.WalletAuditRepository,
	storeRepo repositories.StoreRepository,
	clientRepo repositories.ClientRepository,
	uow repositories.UnitOfWork,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo: walletRepo,
		auditRepo:  auditRepo,
		storeRepo:  storeRepo,
		clientRepo: clientRepo,
		uow:        uow,
	}
}

// AddWallet creates a wallet for a (client, store) pair.
func (u *WalletUsecase) AddWallet(ctx context.Context, in *entities.AddWalletInput) (*entities.Wallet, error) {
	if _, err := u.storeRepo.GetByID(ctx, in.StoreID); err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletNotFound, "store not found")
	}

	alert := decimal.Zero
	if in.AlertAmount != "" {
		parsed, err := decimal.NewFromString(in.AlertAmount)
		if err != nil {
			return nil, domainerrors.BadRequest(domainerrors.CodeWalletUnableToCreate, "invalid alert amount")
		}
		alert = parsed
	}

	wallet := &entities.Wallet{
		ClientID:    in.ClientID,
		StoreID:     in.StoreID,
		Name:        in.Name,
		Status:      entities.WalletStatusActive,
		AlertAmount: alert,
	}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeWalletUnableToCreate,
			"could not create the wallet", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return wallet, nil
}

// DeactivateWallet retires a wallet. The row and its audit trail remain.
func (u *WalletUsecase) DeactivateWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.MarkInactive(ctx, clientID, walletID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletUnableToDisable, "wallet not found for client")
	}
	return wallet, nil
}

// FundWallet applies a signed manual adjustment to a wallet. The balance
// mutation and its audit row commit together; the adjustment is a single
// relative UPDATE so concurrent fundings never lose each other's deltas.
func (u *WalletUsecase) FundWallet(ctx context.Context, clientID, storeID, walletID int64, adjustment decimal.Decimal, entityID int64, entityType string) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetClientStoreWallet(ctx, clientID, storeID, walletID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletClientMismatch, "wallet not found for client and store")
	}

	store, err := u.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletNotFound, "store not found")
	}
	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletNotFound, "client not found")
	}

	var updated *entities.Wallet
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		updated, err = u.walletRepo.Increment(txCtx, walletID, adjustment)
		if err != nil {
			return domainerrors.NewAppError(500, domainerrors.CodeWalletCannotFund,
				"could not fund the wallet", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
		}

		_, err = u.auditRepo.AddEntry(txCtx, &entities.WalletAdjustment{
			WalletID:         walletID,
			WalletName:       wallet.Name,
			ClientID:         clientID,
			ClientName:       client.Name,
			StoreID:          storeID,
			StoreName:        store.Name,
			EntityID:         entityID,
			EntityType:       entityType,
			AdjustmentAmount: adjustment,
			PreviousAmount:   updated.CurrentAmount.Sub(adjustment),
			TotalAmount:      updated.CurrentAmount,
		})
		if err != nil {
			return domainerrors.NewAppError(500, domainerrors.CodeWalletCannotAudit,
				"could not audit the wallet adjustment", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ViewWallet returns a single client-owned wallet.
func (u *WalletUsecase) ViewWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetClientWallet(ctx, clientID, walletID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeWalletNotFound, "wallet not found")
	}
	return wallet, nil
}

// ViewStoreWallets returns a store's wallets, optionally active only.
func (u *WalletUsecase) ViewStoreWallets(ctx context.Context, storeID int64, activeOnly bool) ([]*entities.Wallet, error) {
	return u.walletRepo.GetByStoreID(ctx, storeID, activeOnly)
}

// ViewClientWallets returns a client's wallets, optionally active only.
func (u *WalletUsecase) ViewClientWallets(ctx context.Context, clientID int64, activeOnly bool) ([]*entities.Wallet, error) {
	return u.walletRepo.GetByClientID(ctx, clientID, activeOnly)
}

// StoreBalance returns the pooled balance across the store's active wallets.
func (u *WalletUsecase) StoreBalance(ctx context.Context, storeID int64) (decimal.Decimal, error) {
	return u.walletRepo.SumByStore(ctx, storeID)
}

// ViewActivity returns the audit trail for a wallet within a date window.
// Empty bounds default to the last month.
func (u *WalletUsecase) ViewActivity(ctx context.Context, walletID, storeID int64, start, end time.Time) ([]*entities.WalletAdjustment, error) {
	if start.IsZero() {
		start = time.Now().AddDate(0, -1, 0)
	}
	if end.IsZero() {
		end = time.Now()
	}
	return u.auditRepo.ViewActivity(ctx, walletID, storeID, start, end)
}
