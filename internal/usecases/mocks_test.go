package usecases_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"cardwallet.backend/internal/domain/entities"
	"cardwallet.backend/internal/domain/gateways"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) Increment(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	args := m.Called(ctx, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Decrement(ctx context.Context, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	args := m.Called(ctx, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SetAmount(ctx context.Context, clientID, walletID int64, amount decimal.Decimal) (*entities.Wallet, error) {
	args := m.Called(ctx, clientID, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) MarkInactive(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	args := m.Called(ctx, clientID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, walletID int64) (*entities.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetClientWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error) {
	args := m.Called(ctx, clientID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetClientStoreWallet(ctx context.Context, clientID, storeID, walletID int64) (*entities.Wallet, error) {
	args := m.Called(ctx, clientID, storeID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByStoreID(ctx context.Context, storeID int64, activeOnly bool) ([]*entities.Wallet, error) {
	args := m.Called(ctx, storeID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByClientID(ctx context.Context, clientID int64, activeOnly bool) ([]*entities.Wallet, error) {
	args := m.Called(ctx, clientID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SumByStore(ctx context.Context, storeID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Mock WalletAuditRepository
type MockWalletAuditRepository struct {
	mock.Mock
}

func (m *MockWalletAuditRepository) AddEntry(ctx context.Context, entry *entities.WalletAdjustment) (*entities.WalletAdjustment, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletAdjustment), args.Error(1)
}

func (m *MockWalletAuditRepository) ViewActivity(ctx context.Context, walletID, storeID int64, start, end time.Time) ([]*entities.WalletAdjustment, error) {
	args := m.Called(ctx, walletID, storeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WalletAdjustment), args.Error(1)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreatePayout(ctx context.Context, txn *entities.PayoutTxn) (*entities.PayoutTxn, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PayoutTxn), args.Error(1)
}

func (m *MockTransactionRepository) CompletePayout(ctx context.Context, txnID string, entityID int64, entityType, status string) (*entities.PayoutTxn, error) {
	args := m.Called(ctx, txnID, entityID, entityType, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PayoutTxn), args.Error(1)
}

func (m *MockTransactionRepository) GetByTxnID(ctx context.Context, txnID string) ([]*entities.PayoutTxn, error) {
	args := m.Called(ctx, txnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PayoutTxn), args.Error(1)
}

func (m *MockTransactionRepository) GetStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.PayoutTxn, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PayoutTxn), args.Error(1)
}

// Mock CustomerCardProxyRepository
type MockCustomerCardProxyRepository struct {
	mock.Mock
}

func (m *MockCustomerCardProxyRepository) Create(ctx context.Context, binding *entities.CustomerCardProxy) (*entities.CustomerCardProxy, error) {
	args := m.Called(ctx, binding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerCardProxy), args.Error(1)
}

func (m *MockCustomerCardProxyRepository) ChangeStatus(ctx context.Context, proxy, status string) (*entities.CustomerCardProxy, error) {
	args := m.Called(ctx, proxy, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerCardProxy), args.Error(1)
}

func (m *MockCustomerCardProxyRepository) GetActiveProxy(ctx context.Context, customerID int64) (*entities.CustomerCardProxy, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerCardProxy), args.Error(1)
}

func (m *MockCustomerCardProxyRepository) ViewCustomerProxy(ctx context.Context, customerID int64, proxy string) (*entities.CustomerCardProxy, error) {
	args := m.Called(ctx, customerID, proxy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CustomerCardProxy), args.Error(1)
}

// Mock ClientCardProxyRepository
type MockClientCardProxyRepository struct {
	mock.Mock
}

func (m *MockClientCardProxyRepository) Create(ctx context.Context, clientID int64, proxy, status string) (*entities.ClientCardProxy, error) {
	args := m.Called(ctx, clientID, proxy, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientCardProxy), args.Error(1)
}

func (m *MockClientCardProxyRepository) MarkAssigned(ctx context.Context, proxy string) (*entities.ClientCardProxy, error) {
	args := m.Called(ctx, proxy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientCardProxy), args.Error(1)
}

func (m *MockClientCardProxyRepository) ChangeStatus(ctx context.Context, proxy, status string) (*entities.ClientCardProxy, error) {
	args := m.Called(ctx, proxy, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientCardProxy), args.Error(1)
}

func (m *MockClientCardProxyRepository) GetByProxy(ctx context.Context, proxy string) (*entities.ClientCardProxy, error) {
	args := m.Called(ctx, proxy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ClientCardProxy), args.Error(1)
}

func (m *MockClientCardProxyRepository) GetByClientID(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ClientCardProxy), args.Error(1)
}

// Mock EtransferRecipientRepository
type MockEtransferRecipientRepository struct {
	mock.Mock
}

func (m *MockEtransferRecipientRepository) Create(ctx context.Context, rec *entities.EtransferRecipient) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) UpdateContact(ctx context.Context, customerID, recipientID int64, name, email, question, answer string) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, customerID, recipientID, name, email, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) UpdateContactID(ctx context.Context, recipientID int64, contactID string) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, recipientID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) ChangeStatus(ctx context.Context, recipientID int64, status string) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, recipientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) GetByID(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, customerID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) GetByName(ctx context.Context, customerID int64, name string) (*entities.EtransferRecipient, error) {
	args := m.Called(ctx, customerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EtransferRecipient), args.Error(1)
}

func (m *MockEtransferRecipientRepository) GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.EtransferRecipient, error) {
	args := m.Called(ctx, customerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EtransferRecipient), args.Error(1)
}

// Mock EtransferRepository
type MockEtransferRepository struct {
	mock.Mock
}

func (m *MockEtransferRepository) Create(ctx context.Context, et *entities.Etransfer) (*entities.Etransfer, error) {
	args := m.Called(ctx, et)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Etransfer), args.Error(1)
}

func (m *MockEtransferRepository) GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.Etransfer, error) {
	args := m.Called(ctx, customerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Etransfer), args.Error(1)
}

// Mock BillPayeeRepository
type MockBillPayeeRepository struct {
	mock.Mock
}

func (m *MockBillPayeeRepository) Create(ctx context.Context, payee *entities.BillPayee) (*entities.BillPayee, error) {
	args := m.Called(ctx, payee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BillPayee), args.Error(1)
}

func (m *MockBillPayeeRepository) ChangeStatus(ctx context.Context, payeeID int64, status string) (*entities.BillPayee, error) {
	args := m.Called(ctx, payeeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BillPayee), args.Error(1)
}

func (m *MockBillPayeeRepository) UpdateAccountNumber(ctx context.Context, payeeID int64, accountNumber string) (*entities.BillPayee, error) {
	args := m.Called(ctx, payeeID, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BillPayee), args.Error(1)
}

func (m *MockBillPayeeRepository) GetByID(ctx context.Context, customerID, payeeID int64) (*entities.BillPayee, error) {
	args := m.Called(ctx, customerID, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BillPayee), args.Error(1)
}

func (m *MockBillPayeeRepository) Exists(ctx context.Context, customerID int64, name, accountNumber string) (bool, error) {
	args := m.Called(ctx, customerID, name, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillPayeeRepository) GetByCustomerID(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.BillPayee, error) {
	args := m.Called(ctx, customerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BillPayee), args.Error(1)
}

// Mock BillPaymentRepository
type MockBillPaymentRepository struct {
	mock.Mock
}

func (m *MockBillPaymentRepository) Create(ctx context.Context, payment *entities.BillPayment) (*entities.BillPayment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BillPayment), args.Error(1)
}

func (m *MockBillPaymentRepository) GetByCustomerID(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.BillPayment, error) {
	args := m.Called(ctx, customerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BillPayment), args.Error(1)
}

// Mock FeeRepository
type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) Create(ctx context.Context, fee *entities.Fee) (*entities.Fee, error) {
	args := m.Called(ctx, fee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Fee), args.Error(1)
}

func (m *MockFeeRepository) GetActiveFee(ctx context.Context, clientID int64, eventType string) (*entities.Fee, error) {
	args := m.Called(ctx, clientID, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Fee), args.Error(1)
}

func (m *MockFeeRepository) GetByClientID(ctx context.Context, clientID int64) ([]*entities.Fee, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Fee), args.Error(1)
}

// Mock StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetByID(ctx context.Context, storeID int64) (*entities.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByClientID(ctx context.Context, clientID int64) ([]*entities.Store, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Store), args.Error(1)
}

// Mock ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByID(ctx context.Context, clientID int64) (*entities.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

// Mock CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, customerID int64) (*entities.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Customer), args.Error(1)
}

// Mock Processor gateway
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) AdjustValue(ctx context.Context, proxy string, amount decimal.Decimal, kind, comment string) (gateways.Result, error) {
	args := m.Called(ctx, proxy, amount, kind, comment)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) LoadValue(ctx context.Context, proxy string, amount decimal.Decimal) (gateways.Result, error) {
	args := m.Called(ctx, proxy, amount)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) GetBalance(ctx context.Context, proxy string) (gateways.Result, error) {
	args := m.Called(ctx, proxy)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) GetStatus(ctx context.Context, proxy string) (gateways.Result, error) {
	args := m.Called(ctx, proxy)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) Activate(ctx context.Context, proxy, firstName, lastName, city, country string) (gateways.Result, error) {
	args := m.Called(ctx, proxy, firstName, lastName, city, country)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) ChangeStatus(ctx context.Context, proxy, status string) (gateways.Result, error) {
	args := m.Called(ctx, proxy, status)
	return args.Get(0).(gateways.Result), args.Error(1)
}

func (m *MockProcessor) TransferFunds(ctx context.Context, fromProxy, toProxy string, amount decimal.Decimal, comment string) (gateways.Result, error) {
	args := m.Called(ctx, fromProxy, toProxy, amount, comment)
	return args.Get(0).(gateways.Result), args.Error(1)
}

// Mock Bank gateway
type MockBank struct {
	mock.Mock
}

func (m *MockBank) CreateContact(ctx context.Context, firstName, lastName, email string) (gateways.Envelope, error) {
	args := m.Called(ctx, firstName, lastName, email)
	return args.Get(0).(gateways.Envelope), args.Error(1)
}

func (m *MockBank) UpdateContact(ctx context.Context, firstName, lastName, email, contactID string) (gateways.Envelope, error) {
	args := m.Called(ctx, firstName, lastName, email, contactID)
	return args.Get(0).(gateways.Envelope), args.Error(1)
}

func (m *MockBank) SendTransfer(ctx context.Context, amount decimal.Decimal, secQuestion, secAnswer, contactID string) (gateways.Envelope, error) {
	args := m.Called(ctx, amount, secQuestion, secAnswer, contactID)
	return args.Get(0).(gateways.Envelope), args.Error(1)
}

func (m *MockBank) SearchPayees(ctx context.Context, token string) (gateways.Envelope, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(gateways.Envelope), args.Error(1)
}

func (m *MockBank) CreateBillPayment(ctx context.Context, payeeName, payeeCode string, amount decimal.Decimal, accountNumber string) (gateways.Envelope, error) {
	args := m.Called(ctx, payeeName, payeeCode, amount, accountNumber)
	return args.Get(0).(gateways.Envelope), args.Error(1)
}
