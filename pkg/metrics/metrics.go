package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the settlement paths. CompensationFailures is the one an
// operator must page on: it counts debits whose compensating credit could not
// be applied, i.e. money sitting off the cards with no matching remote
// settlement.
var (
	RequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "request_count",
		Help: "App request count",
	}, []string{"route", "method", "status"})

	PayoutsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payouts_created_total",
		Help: "Payout journal rows opened",
	}, []string{"event_type"})

	PayoutsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payouts_completed_total",
		Help: "Payout journal rows completed",
	}, []string{"event_type"})

	SettlementDeclines = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_declines_total",
		Help: "Remote settlement submissions declined by the partner",
	}, []string{"event_type"})

	CompensationRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_compensation_retries_total",
		Help: "Compensating credit attempts after a failed settlement",
	})

	CompensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_compensation_failures_total",
		Help: "Compensating credits exhausted without success; balances inconsistent until reconciled",
	})

	StalePayoutsFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stale_pending_payouts_total",
		Help: "Pending payout rows older than the reconciliation threshold",
	})
)
