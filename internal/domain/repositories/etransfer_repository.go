package repositories

import (
	"context"
	"time"

	"cardwallet.backend/internal/domain/entities"
)

// EtransferRecipientRepository stores customer-owned e-transfer
// counterparties.
type EtransferRecipientRepository interface {
	Create(ctx context.Context, rec *entities.EtransferRecipient) (*entities.EtransferRecipient, error)
	UpdateContact(ctx context.Context, customerID, recipientID int64, name, email, question, answer string) (*entities.EtransferRecipient, error)
	UpdateContactID(ctx context.Context, recipientID int64, contactID string) (*entities.EtransferRecipient, error)
	ChangeStatus(ctx context.Context, recipientID int64, status string) (*entities.EtransferRecipient, error)

	GetByID(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error)
	GetByName(ctx context.Context, customerID int64, name string) (*entities.EtransferRecipient, error)
	GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.EtransferRecipient, error)
}

// EtransferRepository stores settled transfers.
type EtransferRepository interface {
	Create(ctx context.Context, et *entities.Etransfer) (*entities.Etransfer, error)
	GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.Etransfer, error)
}
