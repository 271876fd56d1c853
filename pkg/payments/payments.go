// Package payments wraps the external payment provider behind its
// request/response contract. The provider itself is opaque to the store;
// only the intent and hosted-session calls are modeled.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the provider endpoint and credentials.
type Config struct {
	BaseURL   string
	SecretKey string
}

// Client is an HTTP client for the payment provider API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a provider client from config.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IntentRequest describes a payment intent: an amount in the smallest
// currency unit plus product metadata.
type IntentRequest struct {
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Intent is the provider's payment-intent resource.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// LineItem is one entry of a hosted checkout session.
type LineItem struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"unit_amount"`
	Currency    string `json:"currency"`
	Quantity    int    `json:"quantity"`
}

// SessionRequest describes a hosted checkout session.
type SessionRequest struct {
	PaymentMethodTypes []string   `json:"payment_method_types"`
	LineItems          []LineItem `json:"line_items"`
	Mode               string     `json:"mode"`
	SuccessURL         string     `json:"success_url"`
	CancelURL          string     `json:"cancel_url"`
}

// Session is the provider's hosted checkout session resource. The ID is
// redirectable by the storefront.
type Session struct {
	ID string `json:"id"`
}

// CreateIntent creates a payment intent with the provider.
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	var intent Intent
	if err := c.post(ctx, "/v1/payment_intents", req, &intent); err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &intent, nil
}

// CreateSession creates a hosted checkout session with the provider.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	var session Session
	if err := c.post(ctx, "/v1/checkout/sessions", req, &session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &session, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, data)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
