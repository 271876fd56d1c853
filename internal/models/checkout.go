package models

import (
	"errors"
	"fmt"
	"time"
)

// Stage is one step of the checkout flow. Exactly one stage is active for a
// checkout session at any time; transitions happen only through NextStage
// and PrevStage.
type Stage string

const (
	StageCart         Stage = "cart"
	StageUsername     Stage = "username"
	StageDelivery     Stage = "delivery"
	StagePayment      Stage = "payment"
	StageConfirmation Stage = "confirmation"
)

// ErrInvalidTransition is returned for any stage move outside the
// transition table.
var ErrInvalidTransition = errors.New("invalid checkout stage transition")

// Valid reports whether s is one of the five checkout stages.
func (s Stage) Valid() bool {
	switch s {
	case StageCart, StageUsername, StageDelivery, StagePayment, StageConfirmation:
		return true
	}
	return false
}

// EntryAction selects how the buyer leaves the cart stage: "Buy Now" goes
// through the username form first, "Add to Cart" skips it.
type EntryAction string

const (
	EntryBuyNow    EntryAction = "buy_now"
	EntryAddToCart EntryAction = "add_to_cart"
)

// NextStage returns the forward transition from a stage. The entry action
// is consulted only when leaving the cart; for every other stage it is
// ignored. The confirmation stage is terminal.
func NextStage(from Stage, entry EntryAction) (Stage, error) {
	switch from {
	case StageCart:
		switch entry {
		case EntryBuyNow:
			return StageUsername, nil
		case EntryAddToCart:
			return StageDelivery, nil
		}
		return "", fmt.Errorf("unknown entry action %q: %w", entry, ErrInvalidTransition)
	case StageUsername:
		return StageDelivery, nil
	case StageDelivery:
		return StagePayment, nil
	case StagePayment:
		return StageConfirmation, nil
	}
	return "", fmt.Errorf("cannot advance from %q: %w", from, ErrInvalidTransition)
}

// PrevStage returns the backward transition from a stage. Going back from
// the username form exits checkout mode entirely; backing out of cart or
// confirmation is not allowed.
func PrevStage(from Stage) (Stage, error) {
	switch from {
	case StageUsername:
		return StageCart, nil
	case StageDelivery:
		return StageUsername, nil
	case StagePayment:
		return StageDelivery, nil
	}
	return "", fmt.Errorf("cannot go back from %q: %w", from, ErrInvalidTransition)
}

// Quantity bounds for a single product selection.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// BuyerProfile holds the free-text fields collected by the username and
// delivery forms. Fields survive back navigation unchanged.
type BuyerProfile struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Username   string `json:"username" validate:"required"`
}

// PaymentDetails is collected by the payment form. It is never forwarded to
// a payment processor by the confirmation flow.
type PaymentDetails struct {
	CardNumber string `json:"card_number" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVC        string `json:"cvc" validate:"required"`
	NameOnCard string `json:"name_on_card" validate:"required"`
}

// CheckoutSession is the state of one checkout attempt. It lives only for
// the duration of the visit; nothing here is persisted durably.
type CheckoutSession struct {
	ID         string          `json:"id"`
	ProductID  int             `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Stage      Stage           `json:"stage"`
	InCheckout bool            `json:"in_checkout"`
	Buyer      BuyerProfile    `json:"buyer"`
	Card       PaymentDetails  `json:"card"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Subtotal renders price x quantity with two decimal places, the exact form
// shown on every stage of the flow.
func Subtotal(price float64, quantity int) string {
	return fmt.Sprintf("%.2f", price*float64(quantity))
}
