package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// FeeRepositoryImpl implements the fee schedule store.
type FeeRepositoryImpl struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *gorm.DB) *FeeRepositoryImpl {
	return &FeeRepositoryImpl{db: db}
}

func (r *FeeRepositoryImpl) Create(ctx context.Context, fee *entities.Fee) (*entities.Fee, error) {
	m := &models.Fee{
		ClientID:     fee.ClientID,
		EventType:    fee.EventType,
		FeeType:      fee.FeeType,
		FeeValue:     fee.FeeValue,
		CurrencyCode: fee.CurrencyCode,
		FeeStatus:    entities.FeeStatusActive,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return feeToEntity(m), nil
}

func (r *FeeRepositoryImpl) GetActiveFee(ctx context.Context, clientID int64, eventType string) (*entities.Fee, error) {
	db := GetDB(ctx, r.db)
	var m models.Fee
	err := db.WithContext(ctx).
		Where("client_id = ? AND event_type = ? AND fee_status = ?",
			clientID, eventType, entities.FeeStatusActive).
		Order("fee_id DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return feeToEntity(&m), nil
}

func (r *FeeRepositoryImpl) GetByClientID(ctx context.Context, clientID int64) ([]*entities.Fee, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Fee
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("fee_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Fee, 0, len(ms))
	for i := range ms {
		out = append(out, feeToEntity(&ms[i]))
	}
	return out, nil
}

func feeToEntity(m *models.Fee) *entities.Fee {
	return &entities.Fee{
		ID:           m.ID,
		ClientID:     m.ClientID,
		EventType:    m.EventType,
		FeeType:      m.FeeType,
		FeeValue:     m.FeeValue,
		CurrencyCode: m.CurrencyCode,
		Status:       m.FeeStatus,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
