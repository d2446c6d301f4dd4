package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/pkg/metrics"
)

// BillPaymentUsecase handles payee management and the bill-payment
// settlement saga.
type BillPaymentUsecase struct {
	payeeRepo         repositories.BillPayeeRepository
	paymentRepo       repositories.BillPaymentRepository
	customerProxyRepo repositories.CustomerCardProxyRepository
	customerRepo      repositories.CustomerRepository
	bank              gateways.Bank
	saga              cardDebitSaga
}

// NewBillPaymentUsecase creates a new bill payment usecase
func NewBillPaymentUsecase(
	payeeRepo repositories.BillPayeeRepository,
	paymentRepo repositories.BillPaymentRepository,
	customerProxyRepo repositories.CustomerCardProxyRepository,
	customerRepo repositories.CustomerRepository,
	feeRepo repositories.FeeRepository,
	processor gateways.Processor,
	bank gateways.Bank,
) *BillPaymentUsecase {
	return &BillPaymentUsecase{
		payeeRepo:         payeeRepo,
		paymentRepo:       paymentRepo,
		customerProxyRepo: customerProxyRepo,
		customerRepo:      customerRepo,
		bank:              bank,
		saga:              cardDebitSaga{processor: processor, feeRepo: feeRepo},
	}
}

// SearchPayees queries the remote biller directory. Tokens shorter than three
// characters are rejected because the directory matches by substring and a
// short token returns the entire catalogue.
func (u *BillPaymentUsecase) SearchPayees(ctx context.Context, token string) ([]*entities.PayeeSearchResult, error) {
	token = strings.TrimSpace(token)
	if len(token) < PayeeSearchMinTokenLen {
		return nil, domainerrors.BadRequest(domainerrors.CodeSearchTokenTooSmall, "search token must be at least 3 characters")
	}

	env, err := u.bank.SearchPayees(ctx, token)
	if err != nil || !env.IsSucceeded {
		return nil, domainerrors.BadGateway(domainerrors.CodeBillPayNoRemoteSearch, "biller directory is unavailable")
	}

	var results []*entities.PayeeSearchResult
	if err := env.DecodeItem(&results); err != nil {
		return nil, domainerrors.BadGateway(domainerrors.CodeBillPayNoRemoteSearch, "biller directory returned an unreadable list")
	}
	return results, nil
}

// AddPayee registers a biller for the customer. The name/account pair is the
// dedup key; the code comes from the payee search.
func (u *BillPaymentUsecase) AddPayee(ctx context.Context, customerID int64, in *entities.CreatePayeeInput) (*entities.BillPayee, error) {
	exists, err := u.payeeRepo.Exists(ctx, customerID, in.Name, in.AccountNumber)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotCreatePayee,
			"could not check for an existing payee", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	if exists {
		return nil, domainerrors.Conflict(domainerrors.CodePayeeExists, "payee already exists")
	}

	payee, err := u.payeeRepo.Create(ctx, &entities.BillPayee{
		CustomerID:    customerID,
		Name:          in.Name,
		Code:          in.Code,
		AccountNumber: in.AccountNumber,
	})
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotCreatePayee,
			"could not create the payee", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return payee, nil
}

// UpdatePayeeAccount changes the account number registered with a payee.
func (u *BillPaymentUsecase) UpdatePayeeAccount(ctx context.Context, customerID, payeeID int64, accountNumber string) (*entities.BillPayee, error) {
	if _, err := u.payeeRepo.GetByID(ctx, customerID, payeeID); err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodePayeeNotFound, "payee not found")
	}

	payee, err := u.payeeRepo.UpdateAccountNumber(ctx, payeeID, accountNumber)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotUpdatePayee,
			"could not update the payee", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return payee, nil
}

// DeactivatePayee retires a payee.
func (u *BillPaymentUsecase) DeactivatePayee(ctx context.Context, customerID, payeeID int64) (*entities.BillPayee, error) {
	if _, err := u.payeeRepo.GetByID(ctx, customerID, payeeID); err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodePayeeNotFound, "payee not found")
	}

	payee, err := u.payeeRepo.ChangeStatus(ctx, payeeID, entities.PayeeStatusInactive)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotDisablePayee,
			"could not deactivate the payee", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return payee, nil
}

// CreateBillPayment runs the debit-first settlement saga against a registered
// payee: verify the card covers amount plus fee, debit, submit to the
// partner, and compensate the debits if the submission fails.
func (u *BillPaymentUsecase) CreateBillPayment(ctx context.Context, customerID, payeeID int64, amount decimal.Decimal) (*entities.BillPayment, error) {
	payee, err := u.payeeRepo.GetByID(ctx, customerID, payeeID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodePayeeNotFound, "payee not found")
	}

	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodePayeeNotFound, "customer not found")
	}

	amount = amount.Abs()
	feeAmount, err := u.saga.resolveFee(ctx, customer.ClientID, entities.EventTypeBillPayment, amount,
		proxy.Proxy, domainerrors.CodeBillPayCannotCheckCard, domainerrors.CodeBillPayInsufficient)
	if err != nil {
		return nil, err
	}

	comment := "Bill payment - " + payee.Name
	if err := u.saga.debitWithFee(ctx, proxy.Proxy, amount, feeAmount, comment, "Bill payment fee",
		domainerrors.CodeBillPayCannotDebit); err != nil {
		return nil, err
	}

	env, err := u.bank.CreateBillPayment(ctx, payee.Name, payee.Code, amount, payee.AccountNumber)
	if err != nil || !env.IsSucceeded {
		metrics.SettlementDeclines.WithLabelValues(entities.EventTypeBillPayment).Inc()
		if compErr := u.saga.compensateDebits(ctx, proxy.Proxy, amount, feeAmount, "Reversing failed bill payment"); compErr != nil {
			return nil, domainerrors.Inconsistent("bill payment debit could not be reversed", compErr)
		}
		return nil, domainerrors.BadGateway(domainerrors.CodeBillPayUnableToCreate,
			"settlement partner rejected the bill payment")
	}

	payment, err := u.paymentRepo.Create(ctx, &entities.BillPayment{
		CustomerID:    customerID,
		PayeeName:     payee.Name,
		AccountNumber: payee.AccountNumber,
		Amount:        amount,
		FeeAmount:     feeAmount,
		ReferenceID:   env.ItemString(),
	})
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeBillPayUnableToCreate,
			"could not record the settled bill payment", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return payment, nil
}

// ViewPayees lists a customer's payees.
func (u *BillPaymentUsecase) ViewPayees(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.BillPayee, error) {
	return u.payeeRepo.GetByCustomerID(ctx, customerID, activeOnly)
}

// ViewBillPayments lists submitted payments within a date window; empty
// bounds default to the last month.
func (u *BillPaymentUsecase) ViewBillPayments(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.BillPayment, error) {
	if start.IsZero() {
		start = time.Now().AddDate(0, -1, 0)
	}
	if end.IsZero() {
		end = time.Now()
	}
	return u.paymentRepo.GetByCustomerID(ctx, customerID, start, end)
}
