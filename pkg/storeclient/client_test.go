package storeclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servermart/internal/models"
	"servermart/pkg/storeclient"
)

// confirmBackend records every confirm request it receives and answers
// the way the storefront backend does.
type confirmBackend struct {
	mu       sync.Mutex
	requests []models.ConfirmRequest
}

func (b *confirmBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/checkout/confirm", func(w http.ResponseWriter, r *http.Request) {
		var req models.ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "An error occurred processing your order"})
			return
		}
		if req.SessionID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Missing session ID"})
			return
		}

		b.mu.Lock()
		b.requests = append(b.requests, req)
		b.mu.Unlock()

		json.NewEncoder(w).Encode(models.ConfirmResponse{
			Success: true,
			Order: models.Order{
				CustomerEmail: req.Customer.Email,
				TotalPaid:     req.Product.Price * float64(req.Product.Quantity),
				Username:      req.Customer.Username,
				Items: []models.OrderItem{
					{Name: req.Product.Name, Quantity: req.Product.Quantity, UnitPrice: req.Product.Price},
				},
			},
		})
	})
	return mux
}

func (b *confirmBackend) received() []models.ConfirmRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.ConfirmRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

func submission() storeclient.Submission {
	return storeclient.Submission{
		Customer: models.CustomerInfo{
			Name:     "Steve Miner",
			Email:    "steve@example.com",
			Username: "Steve",
		},
		Product: models.ProductSelection{
			ID:       1,
			Name:     "VIP Rank",
			Price:    9.99,
			Quantity: 2,
		},
	}
}

var sessionTokenPattern = regexp.MustCompile(`^sess_\d+$`)

func TestSubmitOrder(t *testing.T) {
	backend := &confirmBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	client := storeclient.New(storeclient.Config{
		BaseURL:         server.URL,
		ProcessingDelay: 5 * time.Millisecond,
	})

	result, err := client.SubmitOrder(context.Background(), submission())

	require.NoError(t, err)
	assert.Regexp(t, sessionTokenPattern, result.SessionID)
	assert.Equal(t, storeclient.OrderRef(result.SessionID), result.OrderRef)
	assert.InDelta(t, 19.98, result.Order.TotalPaid, 1e-9)

	requests := backend.received()
	require.Len(t, requests, 1)
	assert.Equal(t, result.SessionID, requests[0].SessionID, "token must not change between generation and confirmation")
	assert.Equal(t, "VIP Rank", requests[0].Product.Name)
}

func TestSubmitOrder_ResubmissionGeneratesFreshToken(t *testing.T) {
	// Submitting twice in sequence produces two distinct tokens and two
	// confirm requests, a logical duplicate on the backend. This asserts
	// current behavior; a dedup key is an open decision.
	backend := &confirmBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	client := storeclient.New(storeclient.Config{
		BaseURL:         server.URL,
		ProcessingDelay: 5 * time.Millisecond,
	})

	first, err := client.SubmitOrder(context.Background(), submission())
	require.NoError(t, err)
	second, err := client.SubmitOrder(context.Background(), submission())
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Len(t, backend.received(), 2)
}

func TestSubmitOrder_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := storeclient.New(storeclient.Config{BaseURL: server.URL})

	result, err := client.SubmitOrder(context.Background(), submission())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSubmitOrder_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse connections

	client := storeclient.New(storeclient.Config{BaseURL: server.URL})

	result, err := client.SubmitOrder(context.Background(), submission())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSubmitOrder_ContextCancelledDuringDelay(t *testing.T) {
	backend := &confirmBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	client := storeclient.New(storeclient.Config{
		BaseURL:         server.URL,
		ProcessingDelay: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.SubmitOrder(ctx, submission())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, backend.received(), "no request may be issued after cancellation")
}

func TestCompleteCheckout(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := storeclient.New(storeclient.Config{BaseURL: server.URL})

	err := client.CompleteCheckout(context.Background(), "abc-123")

	require.NoError(t, err)
	assert.Equal(t, "/api/checkout/abc-123/complete", gotPath)
}

func TestCompleteCheckout_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := storeclient.New(storeclient.Config{BaseURL: server.URL})

	assert.Error(t, client.CompleteCheckout(context.Background(), "abc-123"))
}

func TestOrderRef(t *testing.T) {
	assert.Equal(t, "ORD-1714000000000", storeclient.OrderRef("sess_1714000000000"))
}
