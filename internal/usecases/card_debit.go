package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/pkg/logger"
	"cardwallet.backend/pkg/metrics"
)

// cardDebitSaga is the shared debit-first settlement front half used by the
// e-transfer and bill-payment flows: verify the card covers amount plus fee,
// debit both, and credit them back when the remote submission fails.
type cardDebitSaga struct {
	processor gateways.Processor
	feeRepo   repositories.FeeRepository
}

// resolveFee looks up the fee schedule, verifies the card balance covers
// amount plus fee, and returns the flat fee figure to debit. A missing
// schedule row means the event carries no fee.
func (s *cardDebitSaga) resolveFee(ctx context.Context, clientID int64, eventType string, amount decimal.Decimal, proxy, checkCode, insufficientCode string) (decimal.Decimal, error) {
	res, err := s.processor.GetBalance(ctx, proxy)
	if err != nil || !res.OK {
		return decimal.Zero, domainerrors.BadGateway(checkCode, "could not check the card balance")
	}
	balance, err := res.Balance()
	if err != nil {
		return decimal.Zero, domainerrors.BadGateway(checkCode, "could not parse the card balance")
	}

	required := amount
	feeAmount := decimal.Zero
	fee, err := s.feeRepo.GetActiveFee(ctx, clientID, eventType)
	switch {
	case err == nil:
		required = fee.RequiredTotal(amount)
		feeAmount = fee.ResolveAmount(amount)
	case !errors.Is(err, domainerrors.ErrNotFound):
		// A missing schedule row means no fee; a failed read does not.
		return decimal.Zero, domainerrors.NewAppError(500, checkCode,
			"could not resolve the fee schedule", err)
	}

	if balance.LessThan(required) {
		return decimal.Zero, domainerrors.UnprocessableEntity(insufficientCode, "card cannot cover amount and fee")
	}
	return feeAmount, nil
}

// debitWithFee pulls the principal and, when present, the fee off the card.
// A failed principal debit moves nothing; a failed fee debit reverses the
// principal before failing.
func (s *cardDebitSaga) debitWithFee(ctx context.Context, proxy string, amount, feeAmount decimal.Decimal, comment, feeComment, debitCode string) error {
	res, err := s.processor.AdjustValue(ctx, proxy, amount.Neg(), gateways.AdjustDebit, comment)
	if err != nil || !res.OK {
		return domainerrors.BadGateway(debitCode, "processor declined the debit")
	}

	if feeAmount.IsPositive() {
		res, err = s.processor.AdjustValue(ctx, proxy, feeAmount.Neg(), gateways.AdjustDebit, feeComment)
		if err != nil || !res.OK {
			if compErr := s.compensateDebits(ctx, proxy, amount, decimal.Zero, "Reversing after failed fee debit"); compErr != nil {
				return domainerrors.Inconsistent("fee debit failed and principal could not be reversed", compErr)
			}
			return domainerrors.BadGateway(debitCode, "processor declined the fee debit")
		}
	}
	return nil
}

// compensateDebits credits back the principal and fee. Each credit is retried
// a bounded number of times; exhaustion is escalated because it leaves real
// money off the card with no settled counterpart.
func (s *cardDebitSaga) compensateDebits(ctx context.Context, proxy string, amount, feeAmount decimal.Decimal, comment string) error {
	if err := s.creditWithRetry(ctx, proxy, amount, comment); err != nil {
		return err
	}
	if feeAmount.IsPositive() {
		return s.creditWithRetry(ctx, proxy, feeAmount, comment+" fee")
	}
	return nil
}

func (s *cardDebitSaga) creditWithRetry(ctx context.Context, proxy string, amount decimal.Decimal, comment string) error {
	var lastErr error
	for attempt := 1; attempt <= CompensationAttempts; attempt++ {
		metrics.CompensationRetries.Inc()
		res, err := s.processor.AdjustValue(ctx, proxy, amount, gateways.AdjustCredit, comment)
		if err == nil && res.OK {
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("%w: %s", domainerrors.ErrRemoteCallFailed, res.Payload)
		}
	}

	metrics.CompensationFailures.Inc()
	logger.Error(ctx, "compensating credit exhausted",
		zap.String("proxy", proxy),
		zap.String("amount", amount.String()),
		zap.String("comment", comment),
		zap.Error(lastErr),
	)
	return lastErr
}
