package processor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/gateways"
)

// Processor call endpoints. The remote is a legacy form-POST API; each
// operation is its own .asp page.
const (
	endpointAssignCard    = "CO_AssignCard.asp"
	endpointAcctStatus    = "CO_GetAcctStatus.asp"
	endpointStatusAcct    = "CO_StatusAcct.asp"
	endpointOTBByProxy    = "CO_OTB_ByProxy.asp"
	endpointLoadValue     = "CO_LoadValue_ByProxy.asp"
	endpointAdjustValue   = "CO_AdjustValue.asp"
	endpointTransferFunds = "CO_Acct2AcctTransferFunds.asp"
)

// Country codes the processor expects instead of ISO strings.
const (
	caCountryID   = "006"
	usCountryID   = "840"
	defaultGovtID = "999999999"
)

// A successful response reads "1 ^payload^"; anything else is a decline and
// the raw body is the decline reason.
var successPattern = regexp.MustCompile(`^1 .*`)

// Config carries the processor credentials and program identifiers sent with
// every call.
type Config struct {
	BaseURL      string
	UserID       string
	Password     string
	SourceID     string
	ClientID     string
	SubProgramID string
	PackageID    string
	Timeout      time.Duration
}

// Client is the HTTP client for the card processor.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new processor client
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

func (c *Client) baseParams() url.Values {
	v := url.Values{}
	v.Set("userid", c.cfg.UserID)
	v.Set("pwd", c.cfg.Password)
	v.Set("sourceid", c.cfg.SourceID)
	v.Set("clientid", c.cfg.ClientID)
	v.Set("subprogid", c.cfg.SubProgramID)
	v.Set("pkgid", c.cfg.PackageID)
	return v
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (gateways.Result, error) {
	uri := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, strings.NewReader(params.Encode()))
	if err != nil {
		return gateways.Result{}, fmt.Errorf("build processor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return gateways.Result{}, fmt.Errorf("processor call %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return gateways.Result{}, fmt.Errorf("read processor response: %w", err)
	}

	text := string(body)
	if !successPattern.MatchString(text) {
		return gateways.Result{OK: false, Payload: text}, nil
	}

	// "1 ^f1|f2|...^" -> "f1|f2|..."
	parts := strings.SplitN(text, " ", 2)
	payload := strings.ReplaceAll(parts[1], "^", "")
	return gateways.Result{OK: true, Payload: payload}, nil
}

func (c *Client) AdjustValue(ctx context.Context, proxy string, amount decimal.Decimal, kind, comment string) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("proxykey", proxy)
	params.Set("adjtype", kind)
	params.Set("amount", amount.StringFixed(2))
	params.Set("comment", comment)
	return c.do(ctx, endpointAdjustValue, params)
}

func (c *Client) LoadValue(ctx context.Context, proxy string, amount decimal.Decimal) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("proxykey", proxy)
	params.Set("amount", amount.StringFixed(2))
	return c.do(ctx, endpointLoadValue, params)
}

func (c *Client) GetBalance(ctx context.Context, proxy string) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("proxykey", proxy)
	return c.do(ctx, endpointOTBByProxy, params)
}

func (c *Client) GetStatus(ctx context.Context, proxy string) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("proxykey", proxy)
	return c.do(ctx, endpointAcctStatus, params)
}

func (c *Client) Activate(ctx context.Context, proxy, firstName, lastName, city, country string) (gateways.Result, error) {
	countryID := caCountryID
	if strings.EqualFold(country, "us") {
		countryID = usCountryID
	}

	params := c.baseParams()
	params.Set("proxykey", proxy)
	params.Set("first", firstName)
	params.Set("last", lastName)
	params.Set("city", city)
	params.Set("country", countryID)
	params.Set("ssn", defaultGovtID)
	return c.do(ctx, endpointAssignCard, params)
}

func (c *Client) ChangeStatus(ctx context.Context, proxy, status string) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("ProxyKey", proxy)
	params.Set("status", status)
	return c.do(ctx, endpointStatusAcct, params)
}

func (c *Client) TransferFunds(ctx context.Context, fromProxy, toProxy string, amount decimal.Decimal, comment string) (gateways.Result, error) {
	params := c.baseParams()
	params.Set("SenderProxyKey", fromProxy)
	params.Set("ReceiverProxyKey", toProxy)
	params.Set("curAmount", amount.StringFixed(2))
	params.Set("intReason", "10")
	params.Set("strComment", comment)
	return c.do(ctx, endpointTransferFunds, params)
}
