package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/pkg/logger"
)

// CardUsecase manages the client card pool and customer card bindings.
type CardUsecase struct {
	clientProxyRepo   repositories.ClientCardProxyRepository
	customerProxyRepo repositories.CustomerCardProxyRepository
	customerRepo      repositories.CustomerRepository
	uow               repositories.UnitOfWork
	processor         gateways.Processor
}

// NewCardUsecase creates a new card usecase
func NewCardUsecase(
	clientProxyRepo repositories.ClientCardProxyRepository,
	customerProxyRepo repositories.CustomerCardProxyRepository,
	customerRepo repositories.CustomerRepository,
	uow repositories.UnitOfWork,
	processor gateways.Processor,
) *CardUsecase {
	return &CardUsecase{
		clientProxyRepo:   clientProxyRepo,
		customerProxyRepo: customerProxyRepo,
		customerRepo:      customerRepo,
		uow:               uow,
		processor:         processor,
	}
}

// LoadProxies adds new proxies to a client's card pool in available status.
func (u *CardUsecase) LoadProxies(ctx context.Context, clientID int64, proxies []string) ([]*entities.ClientCardProxy, error) {
	out := make([]*entities.ClientCardProxy, 0, len(proxies))
	for _, proxy := range proxies {
		created, err := u.clientProxyRepo.Create(ctx, clientID, proxy, entities.ProxyStatusAvailable)
		if err != nil {
			return nil, domainerrors.NewAppError(500, domainerrors.CodeCardUnableToSaveProxy,
				"could not add the proxy to the pool", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
		}
		out = append(out, created)
	}
	return out, nil
}

// ActivateCard claims an available pool proxy for a customer: the processor
// assigns the card to the person, then the customer binding and the pool
// transition commit in one transaction. The pool transition is conditional on
// the proxy still being available, so of two concurrent activations exactly
// one wins and the other fails before any binding is written.
func (u *CardUsecase) ActivateCard(ctx context.Context, customerID int64, proxy string) (*entities.CustomerCardProxy, error) {
	pool, err := u.clientProxyRepo.GetByProxy(ctx, proxy)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeProxyNotFound, "proxy is not in the card pool")
	}
	if pool.Status != entities.ProxyStatusAvailable {
		return nil, domainerrors.Conflict(domainerrors.CodeProxyNotAvailable, "proxy is not available")
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeProxyNotFound, "customer not found")
	}
	if customer.ClientID != pool.ClientID {
		return nil, domainerrors.Conflict(domainerrors.CodeProxyClientMismatch, "proxy belongs to another client")
	}

	// A customer holds at most one active card.
	if _, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID); err == nil {
		return nil, domainerrors.Conflict(domainerrors.CodeHasActiveCard, "customer already holds an active card")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCardUnableToActivate,
			"could not check for an existing card", err)
	}

	res, err := u.processor.Activate(ctx, proxy, customer.FirstName, customer.LastName, customer.City, customer.Country)
	if err != nil || !res.OK {
		return nil, domainerrors.BadGateway(domainerrors.CodeCardUnableToActivate,
			"processor could not assign the card")
	}

	// Assign response layout: card number first, then the person id; the
	// expiry rides in the final field. Only the last four card digits are
	// kept locally.
	fields := res.Fields()
	card := fields[0]
	last4 := card
	if len(card) > 4 {
		last4 = card[len(card)-4:]
	}
	binding := &entities.CustomerCardProxy{
		CustomerID: customerID,
		Proxy:      proxy,
		Status:     entities.CardStatusActive,
		PersonID:   res.Field(1),
		Last4:      last4,
		Expiry:     fields[len(fields)-1],
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		created, err := u.customerProxyRepo.Create(txCtx, binding)
		if err != nil {
			return err
		}
		binding = created
		_, err = u.clientProxyRepo.MarkAssigned(txCtx, proxy)
		return err
	})
	if err != nil {
		// The processor-side assignment stands; the pool row is untouched so
		// the claim can be replayed once the conflict clears.
		logger.Error(ctx, "card activation could not be recorded",
			zap.String("proxy", proxy),
			zap.Int64("customer_id", customerID),
			zap.Error(err),
		)
		return nil, domainerrors.Conflict(domainerrors.CodeCannotMarkAssigned,
			"card was claimed concurrently")
	}
	return binding, nil
}

// CardStatus returns the processor-side account status for the customer's
// active card.
func (u *CardUsecase) CardStatus(ctx context.Context, customerID int64) (string, error) {
	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID)
	if err != nil {
		return "", domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	res, err := u.processor.GetStatus(ctx, proxy.Proxy)
	if err != nil || !res.OK {
		return "", domainerrors.BadGateway(domainerrors.CodeCardStatusUnavailable,
			"processor could not report the card status")
	}
	return res.Field(0), nil
}

// CardBalance returns the open-to-buy balance for the customer's active card.
func (u *CardUsecase) CardBalance(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID)
	if err != nil {
		return decimal.Zero, domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	res, err := u.processor.GetBalance(ctx, proxy.Proxy)
	if err != nil || !res.OK {
		return decimal.Zero, domainerrors.BadGateway(domainerrors.CodeCardStatusUnavailable,
			"processor could not report the card balance")
	}
	balance, err := res.Balance()
	if err != nil {
		return decimal.Zero, domainerrors.BadGateway(domainerrors.CodeCardStatusUnavailable,
			"processor returned an unreadable balance")
	}
	return balance, nil
}

// ChangeCardStatus transitions the card at the processor and mirrors the new
// status on the local binding.
func (u *CardUsecase) ChangeCardStatus(ctx context.Context, customerID int64, status string) (*entities.CustomerCardProxy, error) {
	if status != entities.CardStatusActive && status != entities.CardStatusSuspended && status != entities.CardStatusDisabled {
		return nil, domainerrors.BadRequest(domainerrors.CodeInvalidProxy, "unknown card status")
	}

	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	res, err := u.processor.ChangeStatus(ctx, proxy.Proxy, status)
	if err != nil || !res.OK {
		return nil, domainerrors.BadGateway(domainerrors.CodeCardStatusUnavailable,
			"processor declined the status change")
	}

	updated, err := u.customerProxyRepo.ChangeStatus(ctx, proxy.Proxy, status)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCardUnableToSaveProxy,
			"could not mirror the card status", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return updated, nil
}

// TransferFunds moves value between two cards held by the same customer ring
// (for example onto a replacement card).
func (u *CardUsecase) TransferFunds(ctx context.Context, customerID int64, fromProxy, toProxy string, amount decimal.Decimal, comment string) error {
	if _, err := u.customerProxyRepo.ViewCustomerProxy(ctx, customerID, fromProxy); err != nil {
		return domainerrors.NotFound(domainerrors.CodeProxyNotFound, "sender card not found")
	}
	if _, err := u.customerProxyRepo.ViewCustomerProxy(ctx, customerID, toProxy); err != nil {
		return domainerrors.NotFound(domainerrors.CodeProxyNotFound, "receiver card not found")
	}

	res, err := u.processor.TransferFunds(ctx, fromProxy, toProxy, amount.Abs(), comment)
	if err != nil || !res.OK {
		return domainerrors.BadGateway(domainerrors.CodeCardCannotTransfer,
			"processor declined the transfer")
	}
	return nil
}

// ViewPool lists a client's pool proxies.
func (u *CardUsecase) ViewPool(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error) {
	return u.clientProxyRepo.GetByClientID(ctx, clientID)
}
