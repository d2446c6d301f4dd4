package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	"cardwallet.backend/internal/infrastructure/models"
)

// WalletAuditRepositoryImpl implements the append-only adjustment trail.
type WalletAuditRepositoryImpl struct {
	db *gorm.DB
}

// NewWalletAuditRepository creates a new wallet audit repository
func NewWalletAuditRepository(db *gorm.DB) *WalletAuditRepositoryImpl {
	return &WalletAuditRepositoryImpl{db: db}
}

// AddEntry appends one immutable adjustment row.
func (r *WalletAuditRepositoryImpl) AddEntry(ctx context.Context, entry *entities.WalletAdjustment) (*entities.WalletAdjustment, error) {
	m := &models.WalletAdjustment{
		WalletID:         entry.WalletID,
		WalletName:       entry.WalletName,
		ClientID:         entry.ClientID,
		ClientName:       entry.ClientName,
		StoreID:          entry.StoreID,
		StoreName:        entry.StoreName,
		EntityID:         entry.EntityID,
		EntityType:       entry.EntityType,
		EntityName:       entry.EntityName,
		AdjustmentAmount: entry.AdjustmentAmount,
		PreviousAmount:   entry.PreviousAmount,
		TotalAmount:      entry.TotalAmount,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return adjustmentToEntity(m), nil
}

// ViewActivity returns the adjustment rows for a wallet within a window.
func (r *WalletAuditRepositoryImpl) ViewActivity(ctx context.Context, walletID, storeID int64, start, end time.Time) ([]*entities.WalletAdjustment, error) {
	db := GetDB(ctx, r.db)
	var ms []models.WalletAdjustment
	err := db.WithContext(ctx).
		Where("wallet_id = ? AND store_id = ? AND created_at >= ? AND created_at <= ?",
			walletID, storeID, start, end).
		Order("rec_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.WalletAdjustment, 0, len(ms))
	for i := range ms {
		out = append(out, adjustmentToEntity(&ms[i]))
	}
	return out, nil
}

func adjustmentToEntity(m *models.WalletAdjustment) *entities.WalletAdjustment {
	return &entities.WalletAdjustment{
		ID:               m.ID,
		WalletID:         m.WalletID,
		WalletName:       m.WalletName,
		ClientID:         m.ClientID,
		ClientName:       m.ClientName,
		StoreID:          m.StoreID,
		StoreName:        m.StoreName,
		EntityID:         m.EntityID,
		EntityType:       m.EntityType,
		EntityName:       m.EntityName,
		AdjustmentAmount: m.AdjustmentAmount,
		PreviousAmount:   m.PreviousAmount,
		TotalAmount:      m.TotalAmount,
		CreatedAt:        m.CreatedAt,
	}
}
