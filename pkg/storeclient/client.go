// Package storeclient submits checkout orders to the storefront backend.
// It packages the buyer profile and product selection collected by the
// payment form, generates a session token, waits a fixed processing delay,
// and calls the confirmation endpoint.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"servermart/internal/models"
)

const confirmPath = "/api/checkout/confirm"

// Config holds the client settings.
type Config struct {
	// BaseURL of the storefront backend, without trailing slash.
	BaseURL string
	// ProcessingDelay is the artificial wait before the confirm request
	// is issued, simulating payment processing.
	ProcessingDelay time.Duration
	// HTTPClient is optional; a default client is used when nil.
	HTTPClient *http.Client
}

// Client submits orders for confirmation.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a submission client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// Submission is the accumulated checkout input handed to SubmitOrder.
type Submission struct {
	Customer models.CustomerInfo
	Product  models.ProductSelection
}

// Result reports a confirmed submission. The summary values come from the
// submission itself, not the backend response.
type Result struct {
	SessionID string
	OrderRef  string
	Order     models.Order
}

// SubmitOrder generates a fresh session token, waits the configured
// processing delay, and posts the confirm request. The token is generated
// anew on every call, so resubmitting after a failure produces a distinct
// token and a logically duplicate order on the backend. On error the caller
// stays at the payment stage; there is no automatic retry.
func (c *Client) SubmitOrder(ctx context.Context, sub Submission) (*Result, error) {
	sessionID := fmt.Sprintf("sess_%d", time.Now().UnixMilli())

	if c.cfg.ProcessingDelay > 0 {
		select {
		case <-time.After(c.cfg.ProcessingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	body, err := json.Marshal(models.ConfirmRequest{
		SessionID: sessionID,
		Customer:  sub.Customer,
		Product:   sub.Product,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirm request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+confirmPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("confirm endpoint returned status %d: %s", resp.StatusCode, data)
	}

	var confirmed models.ConfirmResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return nil, fmt.Errorf("payment error: %w", err)
	}

	return &Result{
		SessionID: sessionID,
		OrderRef:  OrderRef(sessionID),
		Order:     confirmed.Order,
	}, nil
}

// CompleteCheckout advances a server-held checkout session to the
// confirmation stage after a successful submission.
func (c *Client) CompleteCheckout(ctx context.Context, checkoutID string) error {
	url := fmt.Sprintf("%s/api/checkout/%s/complete", c.cfg.BaseURL, checkoutID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build complete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to complete checkout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("complete endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// OrderRef is the order reference shown on the confirmation view, derived
// from the session token.
func OrderRef(sessionID string) string {
	return strings.Replace(sessionID, "sess_", "ORD-", 1)
}
