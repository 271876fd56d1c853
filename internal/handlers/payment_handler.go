package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"servermart/internal/services"
)

// PaymentHandler exposes the alternate payment-provider integration paths:
// direct payment intents and hosted checkout sessions.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/payment-intent", h.HandleCreatePaymentIntent)
	checkoutRoutes.Post("/session", h.HandleCreateSession)
}

// HandleCreatePaymentIntent creates a provider payment intent for an amount
// and product metadata, returning the client secret.
func (h *PaymentHandler) HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req struct {
		Amount      float64 `json:"amount"`
		ProductID   int     `json:"productId"`
		ProductName string  `json:"productName"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while processing your payment",
		})
	}

	clientSecret, err := h.service.CreateIntent(c.Context(), req.Amount, req.ProductID, req.ProductName)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while processing your payment",
		})
	}

	return c.JSON(fiber.Map{
		"clientSecret": clientSecret,
	})
}

// HandleCreateSession creates a hosted checkout session from a list of
// {name, price, quantity} line items and returns the redirectable session
// ID. A body that is not JSON fails as a payment error; a body whose
// products value is missing or not an array is rejected with the offending
// payload echoed back.
func (h *PaymentHandler) HandleCreateSession(c *fiber.Ctx) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		log.Printf("Error parsing checkout session request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while processing your payment",
		})
	}

	var products []services.CheckoutLineItem
	if err := json.Unmarshal(raw["products"], &products); err != nil || products == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Invalid products array",
			"received": json.RawMessage(c.Body()),
		})
	}

	sessionID, err := h.service.CreateHostedSession(c.Context(), products)
	if err != nil {
		log.Printf("Provider error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while processing your payment",
		})
	}

	log.Printf("Checkout session created: %s", sessionID)
	return c.JSON(fiber.Map{
		"id": sessionID,
	})
}
