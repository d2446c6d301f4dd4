package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// WalletRepositoryImpl implements wallet ledger operations. All balance
// mutations are single atomic relative UPDATEs so concurrent adjustments
// cannot lose each other's writes.
type WalletRepositoryImpl struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepositoryImpl {
	return &WalletRepositoryImpl{db: db}
}

// Create creates a new wallet
func (r *WalletRepositoryImpl) Create(ctx context.Context, wallet *entities.Wallet) error {
	m := &models.Wallet{
		ClientID:      wallet.ClientID,
		StoreID:       wallet.StoreID,
		WalletStatus:  wallet.Status,
		WalletName:    wallet.Name,
		CurrentAmount: wallet.CurrentAmount,
		AlertAmount:   wallet.AlertAmount,
	}
	if m.WalletStatus == "" {
		m.WalletStatus = entities.WalletStatusActive
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*wallet = *walletToEntity(m)
	return nil
}

// Increment atomically adds amount to the wallet balance and returns the
// updated row.
func (r *WalletRepositoryImpl) Increment(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	return r.applyDelta(ctx, walletID, amount)
}

// Decrement atomically subtracts amount from the wallet balance and returns
// the updated row.
func (r *WalletRepositoryImpl) Decrement(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	return r.applyDelta(ctx, walletID, amount.Neg())
}

func (r *WalletRepositoryImpl) applyDelta(ctx context.Context, walletID int64, delta decimal.Decimal) (*entities.Wallet, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("wallet_id = ?", walletID).
		UpdateColumns(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", delta),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, walletID)
}

// SetAmount writes an absolute balance for a client-owned wallet.
func (r *WalletRepositoryImpl) SetAmount(ctx context.Context, clientID, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("client_id = ? AND wallet_id = ?", clientID, walletID).
		UpdateColumns(map[string]interface{}{
			"current_amount": amount,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, walletID)
}

// MarkInactive deactivates a wallet. Wallets are never physically deleted.
func (r *WalletRepositoryImpl) MarkInactive(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("client_id = ? AND wallet_id = ?", clientID, walletID).
		UpdateColumns(map[string]interface{}{
			"wallet_status": entities.WalletStatusInactive,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, walletID)
}

// GetByID gets a wallet by ID
func (r *WalletRepositoryImpl) GetByID(ctx context.Context, walletID int64) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("wallet_id = ?", walletID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// GetClientWallet gets a wallet scoped to its owning client.
func (r *WalletRepositoryImpl) GetClientWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("client_id = ? AND wallet_id = ?", clientID, walletID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// GetClientStoreWallet gets a wallet scoped to a (client, store) pair.
func (r *WalletRepositoryImpl) GetClientStoreWallet(ctx context.Context, clientID, storeID, walletID int64) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("client_id = ? AND store_id = ? AND wallet_id = ?", clientID, storeID, walletID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// GetByStoreID returns a store's wallets ordered by ascending wallet id; the
// first active wallet is the one payouts draw against.
func (r *WalletRepositoryImpl) GetByStoreID(ctx context.Context, storeID int64, activeOnly bool) ([]*entities.Wallet, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("store_id = ?", storeID)
	if activeOnly {
		q = q.Where("wallet_status = ?", entities.WalletStatusActive)
	}

	var ms []models.Wallet
	if err := q.Order("wallet_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return walletsToEntities(ms), nil
}

// GetByClientID returns a client's wallets.
func (r *WalletRepositoryImpl) GetByClientID(ctx context.Context, clientID int64, activeOnly bool) ([]*entities.Wallet, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("client_id = ?", clientID)
	if activeOnly {
		q = q.Where("wallet_status = ?", entities.WalletStatusActive)
	}

	var ms []models.Wallet
	if err := q.Order("wallet_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return walletsToEntities(ms), nil
}

// SumByStore returns the pooled balance across the store's active wallets.
func (r *WalletRepositoryImpl) SumByStore(ctx context.Context, storeID int64) (decimal.Decimal, error) {
	db := GetDB(ctx, r.db)
	var total decimal.NullDecimal
	err := db.WithContext(ctx).Model(&models.Wallet{}).
		Select("SUM(current_amount)").
		Where("store_id = ? AND wallet_status = ?", storeID, entities.WalletStatusActive).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func walletToEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:            m.ID,
		ClientID:      m.ClientID,
		StoreID:       m.StoreID,
		Status:        m.WalletStatus,
		Name:          m.WalletName,
		CurrentAmount: m.CurrentAmount,
		AlertAmount:   m.AlertAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func walletsToEntities(ms []models.Wallet) []*entities.Wallet {
	out := make([]*entities.Wallet, 0, len(ms))
	for i := range ms {
		out = append(out, walletToEntity(&ms[i]))
	}
	return out
}
