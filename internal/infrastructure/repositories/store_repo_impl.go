package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// StoreRepositoryImpl reads store records.
type StoreRepositoryImpl struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepositoryImpl {
	return &StoreRepositoryImpl{db: db}
}

func (r *StoreRepositoryImpl) GetByID(ctx context.Context, storeID int64) (*entities.Store, error) {
	db := GetDB(ctx, r.db)
	var m models.Store
	err := db.WithContext(ctx).Where("store_id = ?", storeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return storeToEntity(&m), nil
}

func (r *StoreRepositoryImpl) GetByClientID(ctx context.Context, clientID int64) ([]*entities.Store, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Store
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("store_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Store, 0, len(ms))
	for i := range ms {
		out = append(out, storeToEntity(&ms[i]))
	}
	return out, nil
}

// ClientRepositoryImpl reads client records.
type ClientRepositoryImpl struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepositoryImpl {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, clientID int64) (*entities.Client, error) {
	db := GetDB(ctx, r.db)
	var m models.Client
	err := db.WithContext(ctx).Where("client_id = ?", clientID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Client{
		ID:        m.ID,
		Name:      m.ClientName,
		Status:    m.ClientStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// CustomerRepositoryImpl reads customer records.
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepositoryImpl {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, customerID int64) (*entities.Customer, error) {
	db := GetDB(ctx, r.db)
	var m models.Customer
	err := db.WithContext(ctx).Where("customer_id = ?", customerID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Customer{
		ID:        m.ID,
		ClientID:  m.ClientID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		City:      m.City,
		Country:   m.Country,
		Status:    m.CustomerStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func storeToEntity(m *models.Store) *entities.Store {
	return &entities.Store{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Name:      m.StoreName,
		Status:    m.StoreStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
