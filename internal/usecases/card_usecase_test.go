package usecases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/usecases"
)

type cardMocks struct {
	clientProxy   *MockClientCardProxyRepository
	customerProxy *MockCustomerCardProxyRepository
	customers     *MockCustomerRepository
	uow           *MockUnitOfWork
	processor     *MockProcessor
}

func newCardUsecase() (*usecases.CardUsecase, *cardMocks) {
	m := &cardMocks{
		clientProxy:   new(MockClientCardProxyRepository),
		customerProxy: new(MockCustomerCardProxyRepository),
		customers:     new(MockCustomerRepository),
		uow:           new(MockUnitOfWork),
		processor:     new(MockProcessor),
	}
	uc := usecases.NewCardUsecase(m.clientProxy, m.customerProxy, m.customers, m.uow, m.processor)
	return uc, m
}

func poolProxy(status string) *entities.ClientCardProxy {
	return &entities.ClientCardProxy{ID: 1, ClientID: 1, Proxy: "7000123", Status: status}
}

func testCustomer() *entities.Customer {
	return &entities.Customer{
		ID: 42, ClientID: 1,
		FirstName: "Jamie", LastName: "Reyes",
		City: "Toronto", Country: "ca",
	}
}

func TestCardUsecase_ActivateCard(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAvailable), nil)
	m.customers.On("GetByID", ctx, int64(42)).Return(testCustomer(), nil)
	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(nil, domainerrors.ErrNotFound)
	// Assign answer: card number, person id, then filler, expiry last.
	m.processor.On("Activate", ctx, "7000123", "Jamie", "Reyes", "Toronto", "ca").
		Return(gateways.Result{OK: true, Payload: "4444440010134242|P-55|999|2712"}, nil)
	m.uow.On("Do", ctx, mock.Anything).Return(nil)
	m.customerProxy.On("Create", ctx, mock.MatchedBy(func(b *entities.CustomerCardProxy) bool {
		return b.CustomerID == 42 &&
			b.Proxy == "7000123" &&
			b.Status == entities.CardStatusActive &&
			b.PersonID == "P-55" &&
			b.Last4 == "4242" &&
			b.Expiry == "2712"
	})).Return(&entities.CustomerCardProxy{ID: 9, CustomerID: 42, Proxy: "7000123", Status: entities.CardStatusActive}, nil)
	m.clientProxy.On("MarkAssigned", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAssigned), nil)

	got, err := uc.ActivateCard(ctx, 42, "7000123")
	require.NoError(t, err)
	require.Equal(t, int64(9), got.ID)
	m.customerProxy.AssertExpectations(t)
	m.clientProxy.AssertExpectations(t)
}

func TestCardUsecase_ActivateCard_AlreadyHasActiveCard(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAvailable), nil)
	m.customers.On("GetByID", ctx, int64(42)).Return(testCustomer(), nil)
	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(activeProxy(42, "7000999"), nil)

	_, err := uc.ActivateCard(ctx, 42, "7000123")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeHasActiveCard, appErr.Code)

	m.processor.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.customerProxy.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCardUsecase_ActivateCard_AssignFieldLayout(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAvailable), nil)
	m.customers.On("GetByID", ctx, int64(42)).Return(testCustomer(), nil)
	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(nil, domainerrors.ErrNotFound)
	m.processor.On("Activate", ctx, "7000123", "Jamie", "Reyes", "Toronto", "ca").
		Return(gateways.Result{OK: true, Payload: "4444440010131628|123456789|999|11/30/2030 11:59:59 PM|<NULL>|<NULL>|<NULL>|1234561234561"}, nil)
	m.uow.On("Do", ctx, mock.Anything).Return(nil)
	m.customerProxy.On("Create", ctx, mock.MatchedBy(func(b *entities.CustomerCardProxy) bool {
		// The full card number never reaches the row, only its tail.
		return b.PersonID == "123456789" &&
			b.Last4 == "1628" &&
			b.Expiry == "1234561234561"
	})).Return(&entities.CustomerCardProxy{ID: 11, CustomerID: 42, Proxy: "7000123", Status: entities.CardStatusActive}, nil)
	m.clientProxy.On("MarkAssigned", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAssigned), nil)

	_, err := uc.ActivateCard(ctx, 42, "7000123")
	require.NoError(t, err)
	m.customerProxy.AssertExpectations(t)
}

func TestCardUsecase_ActivateCard_ProxyNotAvailable(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAssigned), nil)

	_, err := uc.ActivateCard(ctx, 42, "7000123")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeProxyNotAvailable, appErr.Code)

	m.processor.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCardUsecase_ActivateCard_LostRace(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAvailable), nil)
	m.customers.On("GetByID", ctx, int64(42)).Return(testCustomer(), nil)
	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(nil, domainerrors.ErrNotFound)
	m.processor.On("Activate", ctx, "7000123", "Jamie", "Reyes", "Toronto", "ca").
		Return(gateways.Result{OK: true, Payload: "4444440010134242|P-55|999|2712"}, nil)
	m.uow.On("Do", ctx, mock.Anything).Return(nil)
	m.customerProxy.On("Create", ctx, mock.Anything).
		Return(&entities.CustomerCardProxy{ID: 9}, nil)
	// The conditional pool update matched zero rows: someone else claimed it.
	m.clientProxy.On("MarkAssigned", ctx, "7000123").Return(nil, domainerrors.ErrNotFound)

	_, err := uc.ActivateCard(ctx, 42, "7000123")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeCannotMarkAssigned, appErr.Code)
}

func TestCardUsecase_ActivateCard_ClientMismatch(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	otherClient := testCustomer()
	otherClient.ClientID = 2

	m.clientProxy.On("GetByProxy", ctx, "7000123").Return(poolProxy(entities.ProxyStatusAvailable), nil)
	m.customers.On("GetByID", ctx, int64(42)).Return(otherClient, nil)

	_, err := uc.ActivateCard(ctx, 42, "7000123")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeProxyClientMismatch, appErr.Code)
}

func TestCardUsecase_CardStatusAndBalance(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(activeProxy(42, "7000123"), nil)
	m.processor.On("GetStatus", ctx, "7000123").
		Return(gateways.Result{OK: true, Payload: "OPEN|7000123"}, nil)
	m.processor.On("GetBalance", ctx, "7000123").
		Return(gateways.Result{OK: true, Payload: "88.25|7000123"}, nil)

	status, err := uc.CardStatus(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "OPEN", status)

	balance, err := uc.CardBalance(ctx, 42)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.RequireFromString("88.25")))
}

func TestCardUsecase_ChangeCardStatus(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	suspended := &entities.CustomerCardProxy{ID: 9, CustomerID: 42, Proxy: "7000123", Status: entities.CardStatusSuspended}

	m.customerProxy.On("GetActiveProxy", ctx, int64(42)).Return(activeProxy(42, "7000123"), nil)
	m.processor.On("ChangeStatus", ctx, "7000123", entities.CardStatusSuspended).
		Return(gateways.Result{OK: true}, nil)
	m.customerProxy.On("ChangeStatus", ctx, "7000123", entities.CardStatusSuspended).Return(suspended, nil)

	got, err := uc.ChangeCardStatus(ctx, 42, entities.CardStatusSuspended)
	require.NoError(t, err)
	require.Equal(t, entities.CardStatusSuspended, got.Status)

	_, err = uc.ChangeCardStatus(ctx, 42, "melted")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.CodeInvalidProxy, appErr.Code)
}

func TestCardUsecase_TransferFunds(t *testing.T) {
	uc, m := newCardUsecase()
	ctx := context.Background()

	m.customerProxy.On("ViewCustomerProxy", ctx, int64(42), "7000123").
		Return(activeProxy(42, "7000123"), nil)
	m.customerProxy.On("ViewCustomerProxy", ctx, int64(42), "7000456").
		Return(activeProxy(42, "7000456"), nil)
	m.processor.On("TransferFunds", ctx, "7000123", "7000456",
		decEq(decimal.RequireFromString("15.00")), "replacement card").
		Return(gateways.Result{OK: true}, nil)

	err := uc.TransferFunds(ctx, 42, "7000123", "7000456", decimal.RequireFromString("15.00"), "replacement card")
	require.NoError(t, err)
	m.processor.AssertExpectations(t)
}
