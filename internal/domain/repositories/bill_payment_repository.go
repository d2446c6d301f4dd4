package repositories

import (
	"context"
	"time"

	"cardwallet.backend/internal/domain/entities"
)

// BillPayeeRepository stores customer-owned billers.
type BillPayeeRepository interface {
	Create(ctx context.Context, payee *entities.BillPayee) (*entities.BillPayee, error)
	ChangeStatus(ctx context.Context, payeeID int64, status string) (*entities.BillPayee, error)
	UpdateAccountNumber(ctx context.Context, payeeID int64, accountNumber string) (*entities.BillPayee, error)

	GetByID(ctx context.Context, customerID, payeeID int64) (*entities.BillPayee, error)
	Exists(ctx context.Context, customerID int64, name, accountNumber string) (bool, error)
	GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.BillPayee, error)
}

// BillPaymentRepository stores submitted bill payments.
type BillPaymentRepository interface {
	Create(ctx context.Context, payment *entities.BillPayment) (*entities.BillPayment, error)
	GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.BillPayment, error)
}
