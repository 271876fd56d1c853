package services

import (
	"context"
	"fmt"
	"math"

	"servermart/pkg/payments"
)

// PaymentService drives the alternate provider integration paths: direct
// payment intents and hosted checkout sessions. Neither is wired into the
// primary stage flow.
type PaymentService struct {
	provider   *payments.Client
	successURL string
	cancelURL  string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(provider *payments.Client, successURL, cancelURL string) *PaymentService {
	return &PaymentService{
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CheckoutLineItem is one {name, price, quantity} entry of a hosted
// checkout request.
type CheckoutLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateIntent creates a provider payment intent for the given amount and
// product metadata, returning the client secret. Amounts are converted to
// cents, as the provider requires.
func (s *PaymentService) CreateIntent(ctx context.Context, amount float64, productID int, productName string) (string, error) {
	intent, err := s.provider.CreateIntent(ctx, payments.IntentRequest{
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    "usd",
		Metadata: map[string]string{
			"productId":   fmt.Sprintf("%d", productID),
			"productName": productName,
		},
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// CreateHostedSession creates a hosted checkout session from line items and
// returns the redirectable session ID.
func (s *PaymentService) CreateHostedSession(ctx context.Context, items []CheckoutLineItem) (string, error) {
	lineItems := make([]payments.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, payments.LineItem{
			Name:        item.Name,
			AmountCents: int64(math.Round(item.Price * 100)),
			Currency:    "usd",
			Quantity:    item.Quantity,
		})
	}

	session, err := s.provider.CreateSession(ctx, payments.SessionRequest{
		PaymentMethodTypes: []string{"card"},
		LineItems:          lineItems,
		Mode:               "payment",
		SuccessURL:         s.successURL,
		CancelURL:          s.cancelURL,
	})
	if err != nil {
		return "", err
	}
	return session.ID, nil
}
