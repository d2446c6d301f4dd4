package gateways

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Envelope is the settlement partner's response wrapper. Item carries the
// call-specific payload: a correlation id for contact/transfer calls, a list
// of payees for the search call.
type Envelope struct {
	IsSucceeded bool            `json:"IsSucceeded"`
	Item        json.RawMessage `json:"Item"`
	Message     string          `json:"Message"`
}

// ItemString renders the Item payload as a plain string (correlation ids come
// back as bare numbers or quoted strings depending on the call).
func (e Envelope) ItemString() string {
	return strings.Trim(string(e.Item), `"`)
}

// DecodeItem unmarshals the Item payload into out.
func (e Envelope) DecodeItem(out interface{}) error {
	return json.Unmarshal(e.Item, out)
}

// Bank is the e-transfer / bill-payment settlement partner.
type Bank interface {
	// CreateContact registers an e-transfer contact; Item is the contact id.
	CreateContact(ctx context.Context, firstName, lastName, email string) (Envelope, error)
	// UpdateContact pushes name/email changes for an existing contact.
	UpdateContact(ctx context.Context, firstName, lastName, email, contactID string) (Envelope, error)
	// SendTransfer submits an e-transfer; Item is the partner transaction id.
	SendTransfer(ctx context.Context, amount decimal.Decimal, secQuestion, secAnswer, contactID string) (Envelope, error)
	// SearchPayees queries the remote biller directory by name token.
	SearchPayees(ctx context.Context, token string) (Envelope, error)
	// CreateBillPayment submits a bill payment; Item is the reference id.
	CreateBillPayment(ctx context.Context, payeeName, payeeCode string, amount decimal.Decimal, accountNumber string) (Envelope, error)
}
