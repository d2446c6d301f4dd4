package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
)

// WalletRepository is the wallet side of the ledger store. Balance mutations
// are relative and atomic: a single UPDATE applies the delta and returns the
// resulting row, so concurrent adjustments never lose updates.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	// Increment atomically adds amount to the wallet's balance.
	Increment(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error)
	// Decrement atomically subtracts amount from the wallet's balance.
	Decrement(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error)
	// SetAmount writes an absolute balance for a client-owned wallet.
	SetAmount(ctx context.Context, clientID, walletID int64, amount decimal.Decimal) (*entities.Wallet, error)
	MarkInactive(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error)

	GetByID(ctx context.Context, walletID int64) (*entities.Wallet, error)
	GetClientWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error)
	GetClientStoreWallet(ctx context.Context, clientID, storeID, walletID int64) (*entities.Wallet, error)
	// GetByStoreID returns the store's wallets ordered by ascending wallet id;
	// the first active wallet is the one payouts draw against.
	GetByStoreID(ctx context.Context, storeID int64, activeOnly bool) ([]*entities.Wallet, error)
	GetByClientID(ctx context.Context, clientID int64, activeOnly bool) ([]*entities.Wallet, error)
	// SumByStore returns the pooled balance across the store's active wallets.
	SumByStore(ctx context.Context, storeID int64) (decimal.Decimal, error)
}

// WalletAuditRepository is the append-only adjustment trail. Entries are
// written exactly once per balance mutation and never updated or deleted.
type WalletAuditRepository interface {
	AddEntry(ctx context.Context, entry *entities.WalletAdjustment) (*entities.WalletAdjustment, error)
	ViewActivity(ctx context.Context, walletID, storeID int64, start, end time.Time) ([]*entities.WalletAdjustment, error)
}
