package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// TransactionRepositoryImpl implements the append-only payout journal.
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) CreatePayout(ctx context.Context, txn *entities.PayoutTxn) (*entities.PayoutTxn, error) {
	m := &models.Transaction{
		TxnID:        txn.TxnID,
		CustomerID:   txn.CustomerID,
		Proxy:        txn.Proxy,
		EntityID:     txn.EntityID,
		EntityType:   txn.EntityType,
		EventType:    txn.EventType,
		CurrencyCode: txn.CurrencyCode,
		TxnAmount:    txn.Amount,
		TxnStatus:    txn.Status,
		Description:  txn.Description,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return txnToEntity(m), nil
}

// CompletePayout appends the terminal row. The latest row for the txn id is
// re-read and its payload fields carried forward so the new row stands alone
// as the authoritative state.
func (r *TransactionRepositoryImpl) CompletePayout(ctx context.Context, txnID string, entityID int64, entityType, status string) (*entities.PayoutTxn, error) {
	db := GetDB(ctx, r.db)

	var last models.Transaction
	err := db.WithContext(ctx).
		Where("txn_id = ?", txnID).
		Order("rec_id DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	m := &models.Transaction{
		TxnID:        last.TxnID,
		CustomerID:   last.CustomerID,
		Proxy:        last.Proxy,
		EntityID:     entityID,
		EntityType:   entityType,
		EventType:    last.EventType,
		CurrencyCode: last.CurrencyCode,
		TxnAmount:    last.TxnAmount,
		TxnStatus:    status,
		Description:  last.Description,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return txnToEntity(m), nil
}

func (r *TransactionRepositoryImpl) GetByTxnID(ctx context.Context, txnID string) ([]*entities.PayoutTxn, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Transaction
	err := db.WithContext(ctx).
		Where("txn_id = ?", txnID).
		Order("rec_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	out := make([]*entities.PayoutTxn, 0, len(ms))
	for i := range ms {
		out = append(out, txnToEntity(&ms[i]))
	}
	return out, nil
}

// GetStalePending selects txn ids whose only journal row is still pending and
// older than the cutoff. A txn with a later terminal row is excluded because
// that row's rec_id is higher.
func (r *TransactionRepositoryImpl) GetStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.PayoutTxn, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Transaction
	err := db.WithContext(ctx).
		Where("txn_status = ? AND created_at < ?", entities.TxnStatusPending, cutoff).
		Where("txn_id NOT IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Transaction{}).
				Select("txn_id").
				Where("txn_status <> ?", entities.TxnStatusPending)).
		Order("rec_id ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.PayoutTxn, 0, len(ms))
	for i := range ms {
		out = append(out, txnToEntity(&ms[i]))
	}
	return out, nil
}

func txnToEntity(m *models.Transaction) *entities.PayoutTxn {
	return &entities.PayoutTxn{
		RecID:        m.ID,
		TxnID:        m.TxnID,
		CustomerID:   m.CustomerID,
		Proxy:        m.Proxy,
		EntityID:     m.EntityID,
		EntityType:   m.EntityType,
		EventType:    m.EventType,
		CurrencyCode: m.CurrencyCode,
		Amount:       m.TxnAmount,
		Status:       m.TxnStatus,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}
