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

// BillPayeeRepositoryImpl implements the biller store.
type BillPayeeRepositoryImpl struct {
	db *gorm.DB
}

// NewBillPayeeRepository creates a new bill payee repository
func NewBillPayeeRepository(db *gorm.DB) *BillPayeeRepositoryImpl {
	return &BillPayeeRepositoryImpl{db: db}
}

func (r *BillPayeeRepositoryImpl) Create(ctx context.Context, payee *entities.BillPayee) (*entities.BillPayee, error) {
	m := &models.BillPayee{
		CustomerID:    payee.CustomerID,
		PayeeName:     payee.Name,
		PayeeCode:     payee.Code,
		AccountNumber: payee.AccountNumber,
		PayeeStatus:   entities.PayeeStatusActive,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return payeeToEntity(m), nil
}

func (r *BillPayeeRepositoryImpl) ChangeStatus(ctx context.Context, payeeID int64, status string) (*entities.BillPayee, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.BillPayee{}).
		Where("payee_id = ?", payeeID).
		Update("payee_status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.BillPayee
	if err := db.WithContext(ctx).Where("payee_id = ?", payeeID).First(&m).Error; err != nil {
		return nil, err
	}
	return payeeToEntity(&m), nil
}

func (r *BillPayeeRepositoryImpl) UpdateAccountNumber(ctx context.Context, payeeID int64, accountNumber string) (*entities.BillPayee, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.BillPayee{}).
		Where("payee_id = ?", payeeID).
		Update("account_number", accountNumber)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.BillPayee
	if err := db.WithContext(ctx).Where("payee_id = ?", payeeID).First(&m).Error; err != nil {
		return nil, err
	}
	return payeeToEntity(&m), nil
}

func (r *BillPayeeRepositoryImpl) GetByID(ctx context.Context, customerID, payeeID int64) (*entities.BillPayee, error) {
	db := GetDB(ctx, r.db)
	var m models.BillPayee
	err := db.WithContext(ctx).
		Where("payee_id = ? AND customer_id = ?", payeeID, customerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return payeeToEntity(&m), nil
}

func (r *BillPayeeRepositoryImpl) Exists(ctx context.Context, customerID int64, name, accountNumber string) (bool, error) {
	db := GetDB(ctx, r.db)
	var count int64
	err := db.WithContext(ctx).
		Model(&models.BillPayee{}).
		Where("customer_id = ? AND payee_name = ? AND account_number = ? AND payee_status = ?",
			customerID, name, accountNumber, entities.PayeeStatusActive).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BillPayeeRepositoryImpl) GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.BillPayee, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("customer_id = ?", customerID)
	if activeOnly {
		q = q.Where("payee_status = ?", entities.PayeeStatusActive)
	}
	var ms []models.BillPayee
	if err := q.Order("payee_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.BillPayee, 0, len(ms))
	for i := range ms {
		out = append(out, payeeToEntity(&ms[i]))
	}
	return out, nil
}

// BillPaymentRepositoryImpl implements the submitted-payment store.
type BillPaymentRepositoryImpl struct {
	db *gorm.DB
}

// NewBillPaymentRepository creates a new bill payment repository
func NewBillPaymentRepository(db *gorm.DB) *BillPaymentRepositoryImpl {
	return &BillPaymentRepositoryImpl{db: db}
}

func (r *BillPaymentRepositoryImpl) Create(ctx context.Context, payment *entities.BillPayment) (*entities.BillPayment, error) {
	m := &models.BillPayment{
		CustomerID:    payment.CustomerID,
		PayeeName:     payment.PayeeName,
		AccountNumber: payment.AccountNumber,
		Amount:        payment.Amount,
		FeeAmount:     payment.FeeAmount,
		ReferenceID:   payment.ReferenceID,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return billPaymentToEntity(m), nil
}

func (r *BillPaymentRepositoryImpl) GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.BillPayment, error) {
	db := GetDB(ctx, r.db)
	var ms []models.BillPayment
	err := db.WithContext(ctx).
		Where("customer_id = ? AND submitted_at >= ? AND submitted_at <= ?", customerID, start, end).
		Order("rec_id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.BillPayment, 0, len(ms))
	for i := range ms {
		out = append(out, billPaymentToEntity(&ms[i]))
	}
	return out, nil
}

func payeeToEntity(m *models.BillPayee) *entities.BillPayee {
	return &entities.BillPayee{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		Name:          m.PayeeName,
		Code:          m.PayeeCode,
		AccountNumber: m.AccountNumber,
		Status:        m.PayeeStatus,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func billPaymentToEntity(m *models.BillPayment) *entities.BillPayment {
	return &entities.BillPayment{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		PayeeName:     m.PayeeName,
		AccountNumber: m.AccountNumber,
		Amount:        m.Amount,
		FeeAmount:     m.FeeAmount,
		ReferenceID:   m.ReferenceID,
		SubmittedAt:   m.SubmittedAt,
	}
}
