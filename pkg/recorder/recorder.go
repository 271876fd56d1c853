// Package recorder is the client for the downstream purchase-recording
// service. Calls are best effort by contract: the confirmation flow logs a
// failed forward and still reports success to the buyer.
package recorder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client posts purchase payloads to the recording service.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a recorder client for the given endpoint URL.
func New(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Record sends the payload as a JSON array: the normalized order first,
// followed by the catalog entries matching the purchased item.
func (c *Client) Record(ctx context.Context, payload []interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build purchase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send purchase data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("purchase recorder returned status %d", resp.StatusCode)
	}
	return nil
}
