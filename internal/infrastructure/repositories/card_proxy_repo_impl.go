package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/infrastructure/models"
)

// ClientCardProxyRepositoryImpl implements the client-level card inventory.
type ClientCardProxyRepositoryImpl struct {
	db *gorm.DB
}

// NewClientCardProxyRepository creates a new client card proxy repository
func NewClientCardProxyRepository(db *gorm.DB) *ClientCardProxyRepositoryImpl {
	return &ClientCardProxyRepositoryImpl{db: db}
}

func (r *ClientCardProxyRepositoryImpl) Create(ctx context.Context, clientID int64, proxy, status string) (*entities.ClientCardProxy, error) {
	m := &models.ClientCardProxy{
		ClientID:    clientID,
		Proxy:       proxy,
		ProxyStatus: status,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return clientProxyToEntity(m), nil
}

// MarkAssigned claims a pool proxy. The WHERE clause pins the current status
// so of two concurrent claims exactly one update matches a row; the other
// sees zero rows affected and gets ErrNotFound.
func (r *ClientCardProxyRepositoryImpl) MarkAssigned(ctx context.Context, proxy string) (*entities.ClientCardProxy, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.ClientCardProxy{}).
		Where("proxy = ? AND proxy_status = ?", proxy, entities.ProxyStatusAvailable).
		Update("proxy_status", entities.ProxyStatusAssigned)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByProxy(ctx, proxy)
}

func (r *ClientCardProxyRepositoryImpl) ChangeStatus(ctx context.Context, proxy, status string) (*entities.ClientCardProxy, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.ClientCardProxy{}).
		Where("proxy = ?", proxy).
		Update("proxy_status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByProxy(ctx, proxy)
}

func (r *ClientCardProxyRepositoryImpl) GetByProxy(ctx context.Context, proxy string) (*entities.ClientCardProxy, error) {
	db := GetDB(ctx, r.db)
	var m models.ClientCardProxy
	err := db.WithContext(ctx).Where("proxy = ?", proxy).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return clientProxyToEntity(&m), nil
}

func (r *ClientCardProxyRepositoryImpl) GetByClientID(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error) {
	db := GetDB(ctx, r.db)
	var ms []models.ClientCardProxy
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("rec_id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.ClientCardProxy, 0, len(ms))
	for i := range ms {
		out = append(out, clientProxyToEntity(&ms[i]))
	}
	return out, nil
}

// CustomerCardProxyRepositoryImpl implements the customer-to-card binding
// store.
type CustomerCardProxyRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerCardProxyRepository creates a new customer card proxy repository
func NewCustomerCardProxyRepository(db *gorm.DB) *CustomerCardProxyRepositoryImpl {
	return &CustomerCardProxyRepositoryImpl{db: db}
}

func (r *CustomerCardProxyRepositoryImpl) Create(ctx context.Context, binding *entities.CustomerCardProxy) (*entities.CustomerCardProxy, error) {
	m := &models.CustomerCardProxy{
		CustomerID:  binding.CustomerID,
		Proxy:       binding.Proxy,
		ProxyStatus: binding.Status,
		PersonID:    binding.PersonID,
		Last4:       binding.Last4,
		Expiry:      binding.Expiry,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return customerProxyToEntity(m), nil
}

func (r *CustomerCardProxyRepositoryImpl) ChangeStatus(ctx context.Context, proxy, status string) (*entities.CustomerCardProxy, error) {
	db := GetDB(ctx, r.db)
	res := db.WithContext(ctx).
		Model(&models.CustomerCardProxy{}).
		Where("proxy = ?", proxy).
		Update("proxy_status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.CustomerCardProxy
	if err := db.WithContext(ctx).Where("proxy = ?", proxy).First(&m).Error; err != nil {
		return nil, err
	}
	return customerProxyToEntity(&m), nil
}

func (r *CustomerCardProxyRepositoryImpl) GetActiveProxy(ctx context.Context, customerID int64) (*entities.CustomerCardProxy, error) {
	db := GetDB(ctx, r.db)
	var m models.CustomerCardProxy
	err := db.WithContext(ctx).
		Where("customer_id = ? AND proxy_status = ?", customerID, entities.CardStatusActive).
		Order("rec_id DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerProxyToEntity(&m), nil
}

func (r *CustomerCardProxyRepositoryImpl) ViewCustomerProxy(ctx context.Context, customerID int64, proxy string) (*entities.CustomerCardProxy, error) {
	db := GetDB(ctx, r.db)
	var m models.CustomerCardProxy
	err := db.WithContext(ctx).
		Where("customer_id = ? AND proxy = ?", customerID, proxy).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerProxyToEntity(&m), nil
}

func clientProxyToEntity(m *models.ClientCardProxy) *entities.ClientCardProxy {
	return &entities.ClientCardProxy{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Proxy:     m.Proxy,
		Status:    m.ProxyStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func customerProxyToEntity(m *models.CustomerCardProxy) *entities.CustomerCardProxy {
	return &entities.CustomerCardProxy{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Proxy:      m.Proxy,
		Status:     m.ProxyStatus,
		PersonID:   m.PersonID,
		Last4:      m.Last4,
		Expiry:     m.Expiry,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
