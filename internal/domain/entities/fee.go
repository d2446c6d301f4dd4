package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee types
const (
	FeeTypeFixed      = "fixed"
	FeeTypePercentage = "percentage"
)

// Fee statuses
const (
	FeeStatusActive   = "active"
	FeeStatusInactive = "inactive"
)

// Fee is one entry in the fee schedule, keyed by client and event type.
// For a fixed fee the value is a flat dollar figure; for a percentage fee
// the value is a rate applied to the transaction amount.
type Fee struct {
	ID           int64           `json:"feeId"`
	ClientID     int64           `json:"clientId"`
	EventType    string          `json:"eventType"`
	FeeType      string          `json:"feeType"`
	FeeValue     decimal.Decimal `json:"feeValue"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RequiredTotal returns the balance a card must hold before the event may
// proceed: amount plus flat fee for fixed fees, amount*(1+rate) for
// percentage fees.
func (f *Fee) RequiredTotal(amount decimal.Decimal) decimal.Decimal {
	if f.FeeType == FeeTypePercentage {
		return amount.Mul(decimal.NewFromInt(1).Add(f.FeeValue))
	}
	return amount.Add(f.FeeValue)
}

// ResolveAmount returns the flat fee figure actually debited from the card.
// A percentage fee is resolved once against the amount so the debit agrees
// with the required-total check.
func (f *Fee) ResolveAmount(amount decimal.Decimal) decimal.Decimal {
	if f.FeeType == FeeTypePercentage {
		return amount.Mul(f.FeeValue)
	}
	return f.FeeValue
}
