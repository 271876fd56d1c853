package models

import "time"

// CustomerInfo is the customer block of a confirm request, as collected by
// the checkout forms.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Username   string `json:"username"`
}

// ProductSelection identifies the purchased product and quantity.
type ProductSelection struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ConfirmRequest is the body of POST /api/checkout/confirm.
type ConfirmRequest struct {
	SessionID string           `json:"session_id" validate:"required"`
	Customer  CustomerInfo     `json:"customer"`
	Product   ProductSelection `json:"product"`
}

// OrderItem is one purchased line in a normalized order.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// DeliveryAddress is the delivery block of a normalized order.
type DeliveryAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order is the normalized record built by the confirmation endpoint. The
// total is always recomputed from unit price and quantity, never trusted
// from a client-side figure.
type Order struct {
	CustomerEmail   string          `json:"customerEmail"`
	TotalPaid       float64         `json:"totalPaid"`
	Username        string          `json:"username"`
	Items           []OrderItem     `json:"items"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
}

// ConfirmResponse is the success envelope of the confirmation endpoint.
type ConfirmResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// OrderRecord is a confirmed order held in the process-local order log.
// Orders are not stored durably; the log exists so duplicate submissions
// are observable while the process runs.
type OrderRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Order     Order     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
