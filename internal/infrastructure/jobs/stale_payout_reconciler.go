package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"cardwallet.backend/internal/domain/entities"
	"cardwallet.backend/pkg/logger"
	"cardwallet.backend/pkg/metrics"
)

// stalePayoutSource is the slice of the transaction journal the reconciler
// needs.
type stalePayoutSource interface {
	GetStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.PayoutTxn, error)
}

// StalePayoutReconciler periodically scans the journal for payouts whose
// latest row has been pending longer than the age threshold. A stale pending
// row means the wallet moved but the processor outcome was never recorded, so
// each hit is surfaced to the operators rather than auto-resolved.
type StalePayoutReconciler struct {
	txns     stalePayoutSource
	maxAge   time.Duration
	interval time.Duration
	batch    int
	stop     chan struct{}
}

func NewStalePayoutReconciler(txns stalePayoutSource, maxAge, interval time.Duration) *StalePayoutReconciler {
	return &StalePayoutReconciler{
		txns:     txns,
		maxAge:   maxAge,
		interval: interval,
		batch:    100,
		stop:     make(chan struct{}),
	}
}

func (j *StalePayoutReconciler) Start(ctx context.Context) {
	logger.Info(ctx, "starting stale payout reconciler",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "stale payout reconciler stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "stale payout reconciler stopped")
			return
		case <-ticker.C:
			j.scan(ctx)
		}
	}
}

func (j *StalePayoutReconciler) Stop() {
	close(j.stop)
}

func (j *StalePayoutReconciler) scan(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	stale, err := j.txns.GetStalePending(ctx, cutoff, j.batch)
	if err != nil {
		logger.Error(ctx, "stale payout scan failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	metrics.StalePayoutsFound.Add(float64(len(stale)))
	for _, txn := range stale {
		logger.Warn(ctx, "payout stuck in pending",
			zap.String("txn_id", txn.TxnID),
			zap.Int64("customer_id", txn.CustomerID),
			zap.String("amount", txn.Amount.String()),
			zap.Time("created_at", txn.CreatedAt),
		)
	}
}
