// Package razorpay is a thin client for the Razorpay REST API covering
// order creation, payment capture and payment fetch.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shirtpay/internal/domain/payment"
)

// alreadyCapturedDescription is the exact error description Razorpay
// returns for a repeated capture. It is the only recoverable capture error.
const alreadyCapturedDescription = "This payment has already been captured"

type Client struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	HTTP      *http.Client
}

func New(baseURL, keyID, keySecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		HTTP:      httpClient,
	}
}

type orderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResp struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	AmountDue int64  `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type captureReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type paymentResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *Client) CreateOrder(ctx context.Context, req payment.CreateOrderRequest) (payment.Order, error) {
	body := orderReq{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}

	raw, err := c.post(ctx, c.BaseURL+"/v1/orders", body)
	if err != nil {
		return payment.Order{}, err
	}

	var out orderResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.Order{}, fmt.Errorf("unmarshal order response: %w", err)
	}

	return payment.Order{
		ID:        out.ID,
		Entity:    out.Entity,
		Amount:    out.Amount,
		AmountDue: out.AmountDue,
		Currency:  out.Currency,
		Receipt:   out.Receipt,
		Status:    out.Status,
		CreatedAt: out.CreatedAt,
	}, nil
}

func (c *Client) CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (payment.Payment, error) {
	body := captureReq{
		Amount:   amount,
		Currency: currency,
	}

	url := fmt.Sprintf("%s/v1/payments/%s/capture", c.BaseURL, paymentID)
	raw, err := c.post(ctx, url, body)
	if err != nil {
		return payment.Payment{}, err
	}

	return parsePayment(raw)
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (payment.Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.BaseURL, paymentID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("create fetch request: %w", err)
	}
	httpReq.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("http fetch request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return payment.Payment{}, providerError(resp.Status, raw)
	}

	return parsePayment(raw)
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	j, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(j))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return nil, providerError(resp.Status, raw)
	}

	return raw, nil
}

func parsePayment(raw []byte) (payment.Payment, error) {
	var out paymentResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.Payment{}, fmt.Errorf("unmarshal payment response: %w", err)
	}

	return payment.Payment{
		ID:       out.ID,
		Amount:   out.Amount,
		Currency: out.Currency,
		Status:   payment.Status(out.Status),
	}, nil
}

// providerError maps a non-2xx Razorpay response to an error, surfacing
// the repeated-capture condition as payment.ErrAlreadyCaptured.
func providerError(status string, raw []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)

	if envelope.Error.Description == alreadyCapturedDescription {
		return fmt.Errorf("razorpay: %w", payment.ErrAlreadyCaptured)
	}
	if envelope.Error.Description != "" {
		return fmt.Errorf("razorpay %s: %s", status, envelope.Error.Description)
	}
	return fmt.Errorf("razorpay %s: %s", status, string(raw))
}
