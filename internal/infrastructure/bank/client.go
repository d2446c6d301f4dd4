package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/gateways"
)

// Settlement partner endpoints.
const (
	endpointSendTransfer  = "ETransfer/CreateEtransferTransaction"
	endpointCreateContact = "ETransfer/CreateEtransferContact"
	endpointUpdateContact = "ETransfer/UpdateEtransferContact"
	endpointPayeeList     = "BillPayment/GetPayeeList"
	endpointBillPayment   = "BillPayment/CreateIndividualBillPayment"
)

// Partner constants. Contacts are personal ("P"); transfers are money-send
// ("C") at real-time priority.
const (
	contactTypePersonal = "P"
	txnTypeMoneySend    = "C"
	priorityRealTime    = 0

	caCountryID  = 38
	onProvinceID = 9
)

// Config carries the partner credentials.
type Config struct {
	BaseURL        string
	AuthToken      string
	CustomerNumber string
	Timeout        time.Duration
}

// Client is the HTTP client for the e-transfer / bill-payment partner.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new bank client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, endpoint string, payload map[string]interface{}) (gateways.Envelope, error) {
	payload["CustomerNumber"] = c.cfg.CustomerNumber

	body, err := json.Marshal(payload)
	if err != nil {
		return gateways.Envelope{}, fmt.Errorf("encode partner request: %w", err)
	}

	uri := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return gateways.Envelope{}, fmt.Errorf("build partner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)

	res, err := c.http.Do(req)
	if err != nil {
		return gateways.Envelope{}, fmt.Errorf("partner call %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	var env gateways.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return gateways.Envelope{}, fmt.Errorf("decode partner response: %w", err)
	}
	return env, nil
}

func (c *Client) CreateContact(ctx context.Context, firstName, lastName, email string) (gateways.Envelope, error) {
	return c.do(ctx, endpointCreateContact, map[string]interface{}{
		"ContactTypeCode": contactTypePersonal,
		"FirstName":       firstName,
		"LastName":        lastName,
		"EMail":           email,
		"CountryId":       caCountryID,
		"ProvinceId":      onProvinceID,
	})
}

func (c *Client) UpdateContact(ctx context.Context, firstName, lastName, email, contactID string) (gateways.Envelope, error) {
	return c.do(ctx, endpointUpdateContact, map[string]interface{}{
		"ContactTypeCode": contactTypePersonal,
		"FirstName":       firstName,
		"LastName":        lastName,
		"EMail":           email,
		"CountryId":       caCountryID,
		"ProvinceId":      onProvinceID,
		"ContactId":       contactID,
		// Required by the partner for updates even though their docs omit it.
		"PhoneNumber": "1 555-555-5555",
	})
}

func (c *Client) SendTransfer(ctx context.Context, amount decimal.Decimal, secQuestion, secAnswer, contactID string) (gateways.Envelope, error) {
	return c.do(ctx, endpointSendTransfer, map[string]interface{}{
		"TransactionTypeCode":    txnTypeMoneySend,
		"PriorityTypeCode":       priorityRealTime,
		"Amount":                 amount.StringFixed(2),
		"ContactId":              contactID,
		"DateOfFunds":            time.Now().UTC().Format(time.RFC3339),
		"SecurityQuestion":       secQuestion,
		"SecurityQuestionAnswer": secAnswer,
	})
}

func (c *Client) SearchPayees(ctx context.Context, token string) (gateways.Envelope, error) {
	return c.do(ctx, endpointPayeeList, map[string]interface{}{
		"Name": token,
	})
}

func (c *Client) CreateBillPayment(ctx context.Context, payeeName, payeeCode string, amount decimal.Decimal, accountNumber string) (gateways.Envelope, error) {
	return c.do(ctx, endpointBillPayment, map[string]interface{}{
		"PayeeCode":          payeeCode,
		"PayeeName":          payeeName,
		"PayeeAccountNumber": accountNumber,
		"Amount":             amount.StringFixed(2),
	})
}
