package gateways

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Adjustment kinds understood by the processor.
const (
	AdjustDebit  = "DEBIT"
	AdjustCredit = "CREDIT"
)

// Result is the processor's answer to a call. OK reflects the processor's own
// accept/decline; transport failures are returned as errors alongside. The
// payload is a pipe-delimited string whose fields are position-dependent per
// call type (e.g. the balance call's first field is the balance, the second
// the echoed proxy).
type Result struct {
	OK      bool
	Payload string
}

// Fields splits the pipe-delimited payload.
func (r Result) Fields() []string {
	return strings.Split(r.Payload, "|")
}

// Field returns the i-th positional field, or "" when absent.
func (r Result) Field(i int) string {
	f := r.Fields()
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

// Balance parses the first positional field as a decimal amount. Only valid
// for balance-call results.
func (r Result) Balance() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(r.Field(0)))
}

// Processor is the card-processing system holding the customer-side balances.
// Every call is keyed by an opaque proxy identifier.
type Processor interface {
	// AdjustValue debits or credits the card behind the proxy.
	AdjustValue(ctx context.Context, proxy string, amount decimal.Decimal, kind, comment string) (Result, error)
	// LoadValue moves a signed amount onto (positive) or off (negative) the card.
	LoadValue(ctx context.Context, proxy string, amount decimal.Decimal) (Result, error)
	// GetBalance returns the card's open-to-buy balance.
	GetBalance(ctx context.Context, proxy string) (Result, error)
	// GetStatus returns the card's account status.
	GetStatus(ctx context.Context, proxy string) (Result, error)
	// Activate assigns the card behind the proxy to a person.
	Activate(ctx context.Context, proxy, firstName, lastName, city, country string) (Result, error)
	// ChangeStatus transitions the card's account status.
	ChangeStatus(ctx context.Context, proxy, status string) (Result, error)
	// TransferFunds moves value between two proxies.
	TransferFunds(ctx context.Context, fromProxy, toProxy string, amount decimal.Decimal, comment string) (Result, error)
}
