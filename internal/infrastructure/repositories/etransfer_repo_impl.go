package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// EtransferRecipientRepositoryImpl implements the recipient store.
type EtransferRecipientRepositoryImpl struct {
	db *gorm.DB
}

// NewEtransferRecipientRepository creates a new recipient repository
func NewEtransferRecipientRepository(db *gorm.DB) *EtransferRecipientRepositoryImpl {
	return &EtransferRecipientRepositoryImpl{db: db}
}

func (r *EtransferRecipientRepositoryImpl) Create(ctx context.Context, rec *entities.EtransferRecipient) (*entities.EtransferRecipient, error) {
	m := &models.EtransferRecipient{
		CustomerID:       rec.CustomerID,
		RecipientName:    rec.Name,
		EmailAddress:     rec.Email,
		SecurityQuestion: rec.SecurityQuestion,
		SecurityAnswer:   rec.SecurityAnswer,
		DCContactID:      rec.DCContactID,
		RecipientStatus:  entities.RecipientStatusActive,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return recipientToEntity(m), nil
}

func (r *EtransferRecipientRepositoryImpl) UpdateContact(ctx context.Context, customerID, recipientID int64, name, email, question, answer string) (*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.EtransferRecipient{}).
		Where("recipient_id = ? AND customer_id = ?", recipientID, customerID).
		Updates(map[string]interface{}{
			"recipient_name":    name,
			"email_address":     email,
			"security_question": question,
			"security_answer":   answer,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, customerID, recipientID)
}

// UpdateContactID stores the partner-issued contact id once the contact is
// registered remotely.
func (r *EtransferRecipientRepositoryImpl) UpdateContactID(ctx context.Context, recipientID int64, contactID string) (*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.EtransferRecipient{}).
		Where("recipient_id = ?", recipientID).
		Update("dc_contact_id", null.StringFrom(contactID))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.EtransferRecipient
	if err := db.WithContext(ctx).Where("recipient_id = ?", recipientID).First(&m).Error; err != nil {
		return nil, err
	}
	return recipientToEntity(&m), nil
}

func (r *EtransferRecipientRepositoryImpl) ChangeStatus(ctx context.Context, recipientID int64, status string) (*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.EtransferRecipient{}).
		Where("recipient_id = ?", recipientID).
		Update("recipient_status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.EtransferRecipient
	if err := db.WithContext(ctx).Where("recipient_id = ?", recipientID).First(&m).Error; err != nil {
		return nil, err
	}
	return recipientToEntity(&m), nil
}

func (r *EtransferRecipientRepositoryImpl) GetByID(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	var m models.EtransferRecipient
	err := db.WithContext(ctx).
		Where("recipient_id = ? AND customer_id = ?", recipientID, customerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return recipientToEntity(&m), nil
}

func (r *EtransferRecipientRepositoryImpl) GetByName(ctx context.Context, customerID int64, name string) (*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	var m models.EtransferRecipient
	err := db.WithContext(ctx).
		Where("customer_id = ? AND recipient_name = ?", customerID, name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return recipientToEntity(&m), nil
}

func (r *EtransferRecipientRepositoryImpl) GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.EtransferRecipient, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("customer_id = ?", customerID)
	if activeOnly {
		q = q.Where("recipient_status = ?", entities.RecipientStatusActive)
	}
	var ms []models.EtransferRecipient
	if err := q.Order("recipient_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.EtransferRecipient, 0, len(ms))
	for i := range ms {
		out = append(out, recipientToEntity(&ms[i]))
	}
	return out, nil
}

// EtransferRepositoryImpl implements the settled-transfer store.
type EtransferRepositoryImpl struct {
	db *gorm.DB
}

// NewEtransferRepository creates a new etransfer repository
func NewEtransferRepository(db *gorm.DB) *EtransferRepositoryImpl {
	return &EtransferRepositoryImpl{db: db}
}

func (r *EtransferRepositoryImpl) Create(ctx context.Context, et *entities.Etransfer) (*entities.Etransfer, error) {
	m := &models.Etransfer{
		CustomerID:    et.CustomerID,
		TransactionID: et.TransactionID,
		Amount:        et.Amount,
		FeeAmount:     et.FeeAmount,
		RecipientName: et.RecipientName,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return etransferToEntity(m), nil
}

func (r *EtransferRepositoryImpl) GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.Etransfer, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Etransfer
	err := db.WithContext(ctx).
		Where("customer_id = ? AND submitted_at >= ? AND submitted_at <= ?", customerID, start, end).
		Order("rec_id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Etransfer, 0, len(ms))
	for i := range ms {
		out = append(out, etransferToEntity(&ms[i]))
	}
	return out, nil
}

func recipientToEntity(m *models.EtransferRecipient) *entities.EtransferRecipient {
	return &entities.EtransferRecipient{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		Name:             m.RecipientName,
		Email:            m.EmailAddress,
		SecurityQuestion: m.SecurityQuestion,
		SecurityAnswer:   m.SecurityAnswer,
		DCContactID:      m.DCContactID,
		Status:           m.RecipientStatus,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func etransferToEntity(m *models.Etransfer) *entities.Etransfer {
	return &entities.Etransfer{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		FeeAmount:     m.FeeAmount,
		RecipientName: m.RecipientName,
		SubmittedAt:   m.SubmittedAt,
	}
}
