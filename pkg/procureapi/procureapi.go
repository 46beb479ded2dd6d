// Package procureapi is the HTTP client for the procurement backend that
// exposes the buyer credit, stock, and price check endpoints. One
// synchronous request per call; no retries, no pooling tweaks.
package procureapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"syscall"
	"time"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

const maxResponseSizeBytes = 2 << 20

type Config struct {
	// URL of the inventory/price backend, e.g. http://192.168.1.248:5001.
	URL string `envconfig:"URL" split_words:"true" required:"true"`
	// CreditURL of the credit backend; falls back to URL when empty.
	CreditURL string        `envconfig:"CREDIT_URL" split_words:"true"`
	Timeout   time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

// Option customizes a Client.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client implements contract.ProcurementGateway over HTTP.
type Client struct {
	baseURL       string
	creditBaseURL string
	httpClient    *http.Client
}

var _ contractx.ProcurementGateway = (*Client)(nil)

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("procurement backend url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid procurement backend url: %w", err)
	}

	creditBaseURL := strings.TrimRight(strings.TrimSpace(cfg.CreditURL), "/")
	if creditBaseURL == "" {
		creditBaseURL = baseURL
	} else if _, err := url.ParseRequestURI(creditBaseURL); err != nil {
		return nil, fmt.Errorf("invalid credit backend url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := &Client{
		baseURL:       baseURL,
		creditBaseURL: creditBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

func MustNew(cfg Config, opts ...Option) *Client {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

type creditCheckResponse struct {
	Data struct {
		CompanyName string `json:"company_name"`
		CreditScore int    `json:"credit_score"`
		RiskLevel   string `json:"risk_level"`
	} `json:"data"`
}

func (c *Client) BuyerCreditCheck(ctx context.Context, buyerName string) (contractx.CreditReport, error) {
	query := url.Values{"buyername": {buyerName}}

	var resp creditCheckResponse
	if err := c.do(ctx, http.MethodGet, c.creditBaseURL+"/buyer_credit_check", query, &resp); err != nil {
		return contractx.CreditReport{}, err
	}

	return contractx.CreditReport{
		BuyerName:   buyerName,
		CompanyName: resp.Data.CompanyName,
		CreditScore: resp.Data.CreditScore,
		RiskLevel:   resp.Data.RiskLevel,
	}, nil
}

func (c *Client) CheckStock(ctx context.Context, req contractx.StockCheckRequest) (contractx.StockAvailability, error) {
	query := url.Values{
		"buyer_part_number":          {req.BuyerPartNumber},
		"order_quantity":             {strconv.Itoa(req.OrderQuantity)},
		"requested_fulfillment_date": {req.FulfillmentDate},
	}

	var resp contractx.StockAvailability
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/check_stock", query, &resp); err != nil {
		return contractx.StockAvailability{}, err
	}
	return resp, nil
}

func (c *Client) CheckPrice(ctx context.Context, req contractx.PriceCheckRequest) (contractx.PriceQuote, error) {
	query := url.Values{
		"buyer_part_number": {req.BuyerPartNumber},
		"po_price":          {strconv.FormatFloat(req.POPrice, 'f', -1, 64)},
	}

	var resp contractx.PriceQuote
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/check_price", query, &resp); err != nil {
		return contractx.PriceQuote{}, err
	}
	return resp, nil
}

// do issues one request with parameters in the query string (the backend
// reads query params even on POST) and decodes the JSON response.
func (c *Client) do(ctx context.Context, method, rawURL string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL.Path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// mapTransportError folds transport failures onto the contract sentinels
// so tools can render connection and timeout errors distinctly.
func mapTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", contractx.ErrServiceTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %v", contractx.ErrServiceUnavailable, err)
	default:
		return err
	}
}
