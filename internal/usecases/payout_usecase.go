package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/pkg/logger"
	"cardwallet.backend/pkg/metrics"
	"cardwallet.backend/pkg/utils"
)

// PayoutUsecase orchestrates card-load payouts against the store wallet pool.
type PayoutUsecase struct {
	customerProxyRepo repositories.CustomerCardProxyRepository
	walletRepo        repositories.WalletRepository
	auditRepo         repositories.WalletAuditRepository
	txnRepo           repositories.TransactionRepository
	uow               repositories.UnitOfWork
	processor         gateways.Processor
}

// NewPayoutUsecase creates a new payout usecase
func NewPayoutUsecase(
	customerProxyRepo repositories.CustomerCardProxyRepository,
	walletRepo repositories.WalletRepository,
	auditRepo repositories.WalletAuditRepository,
	txnRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	processor gateways.Processor,
) *PayoutUsecase {
	return &PayoutUsecase{
		customerProxyRepo: customerProxyRepo,
		walletRepo:        walletRepo,
		auditRepo:         auditRepo,
		txnRepo:           txnRepo,
		uow:               uow,
		processor:         processor,
	}
}

// CreatePayoutParams carries everything needed to start a payout.
type CreatePayoutParams struct {
	CustomerID   int64
	StoreID      int64
	Amount       decimal.Decimal
	EntityID     int64
	EntityType   string
	CurrencyCode string
	Description  string
}

// CreatePayout runs the payout settlement protocol.
//
// Sign convention: amount < 0 pulls money off the customer's card back to the
// store (wallet balance increases); amount > 0 loads money onto the card
// (wallet balance decreases). The wallet always moves opposite to the card.
func (u *PayoutUsecase) CreatePayout(ctx context.Context, p CreatePayoutParams) (*entities.PayoutTxn, error) {
	if p.CurrencyCode == "" {
		p.CurrencyCode = entities.CurrencyCAD
	}

	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, p.CustomerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	activeWallets, err := u.walletRepo.GetByStoreID(ctx, p.StoreID, true)
	if err != nil || len(activeWallets) == 0 {
		return nil, domainerrors.NotFound(domainerrors.CodeNoActiveWallet, "store has no active wallet")
	}

	// Sufficiency is checked against the pooled balance of all active
	// wallets; a credit back to the pool always passes.
	if p.Amount.IsPositive() {
		pooled := decimal.Zero
		for _, w := range activeWallets {
			pooled = pooled.Add(w.CurrentAmount)
		}
		if !pooled.Sub(p.Amount).IsPositive() {
			return nil, domainerrors.UnprocessableEntity(
				domainerrors.CodeInsufficientWalletBalance, "store wallets cannot cover the payout")
		}
	}

	// Funds move through the first active wallet by ascending wallet id.
	wallet := activeWallets[0]
	txnID := utils.GenerateTxnID()
	walletDelta := p.Amount.Neg()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		_, err := u.txnRepo.CreatePayout(txCtx, &entities.PayoutTxn{
			TxnID:        txnID,
			CustomerID:   p.CustomerID,
			Proxy:        proxy.Proxy,
			EntityID:     p.EntityID,
			EntityType:   p.EntityType,
			EventType:    entities.EventTypeCardLoad,
			CurrencyCode: p.CurrencyCode,
			Amount:       p.Amount,
			Status:       entities.TxnStatusPending,
			Description:  p.Description,
		})
		if err != nil {
			return domainerrors.NewAppError(500, domainerrors.CodeUnableToStartPayout,
				"could not open the payout", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
		}
		return u.adjustWalletAudited(txCtx, wallet, walletDelta, p.EntityID, p.EntityType)
	})
	if err != nil {
		return nil, err
	}

	metrics.PayoutsCreated.WithLabelValues(entities.EventTypeCardLoad).Inc()

	res, callErr := u.processor.LoadValue(ctx, proxy.Proxy, p.Amount)
	if callErr != nil || !res.OK {
		// The wallet already moved; put the money back before failing. The
		// journal row stays pending for the reconciler either way.
		if revErr := u.reverseWalletAudited(ctx, wallet.ID, walletDelta, p.EntityID, p.EntityType); revErr != nil {
			metrics.CompensationFailures.Inc()
			logger.Error(ctx, "payout wallet reversal failed",
				zap.String("txn_id", txnID),
				zap.Int64("wallet_id", wallet.ID),
				zap.String("delta", walletDelta.String()),
				zap.Error(revErr),
			)
			return nil, domainerrors.Inconsistent("wallet moved but processor load and reversal both failed", revErr)
		}
		return nil, domainerrors.BadGateway(domainerrors.CodeProcessorAdjustFailed,
			"processor rejected the card load")
	}

	done, err := u.txnRepo.CompletePayout(ctx, txnID, p.EntityID, p.EntityType, entities.TxnStatusComplete)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeUnableToCompletePayout,
			"could not complete the payout", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}

	metrics.PayoutsCompleted.WithLabelValues(entities.EventTypeCardLoad).Inc()
	return done, nil
}

// ViewPayout returns the full journal sequence for a payout id, oldest first.
// The last row is the authoritative current state.
func (u *PayoutUsecase) ViewPayout(ctx context.Context, txnID string) ([]*entities.PayoutTxn, error) {
	rows, err := u.txnRepo.GetByTxnID(ctx, txnID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodePayoutNotFound, "payout not found")
	}
	return rows, nil
}

// adjustWalletAudited applies a signed delta to the wallet and writes the
// paired audit row. Must run inside a unit of work.
func (u *PayoutUsecase) adjustWalletAudited(ctx context.Context, wallet *entities.Wallet, delta decimal.Decimal, entityID int64, entityType string) error {
	updated, err := u.walletRepo.Increment(ctx, wallet.ID, delta)
	if err != nil {
		return domainerrors.NewAppError(500, domainerrors.CodeUnableToAdjustWallet,
			"could not adjust the wallet", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}

	_, err = u.auditRepo.AddEntry(ctx, &entities.WalletAdjustment{
		WalletID:         wallet.ID,
		WalletName:       wallet.Name,
		ClientID:         wallet.ClientID,
		StoreID:          wallet.StoreID,
		EntityID:         entityID,
		EntityType:       entityType,
		AdjustmentAmount: delta,
		PreviousAmount:   updated.CurrentAmount.Sub(delta),
		TotalAmount:      updated.CurrentAmount,
	})
	if err != nil {
		return domainerrors.NewAppError(500, domainerrors.CodeWalletCannotAudit,
			"could not audit the wallet adjustment", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return nil
}

// reverseWalletAudited undoes a previously applied delta, with its own audit
// row, in its own transaction.
func (u *PayoutUsecase) reverseWalletAudited(ctx context.Context, walletID int64, delta decimal.Decimal, entityID int64, entityType string) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		wallet, err := u.walletRepo.GetByID(txCtx, walletID)
		if err != nil {
			return err
		}
		return u.adjustWalletAudited(txCtx, wallet, delta.Neg(), entityID, entityType)
	})
}
