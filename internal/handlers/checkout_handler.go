package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"servermart/internal/models"
	"servermart/internal/repositories"
	"servermart/internal/services"
)

// CheckoutHandler handles the checkout stage flow and the order
// confirmation endpoint.
type CheckoutHandler struct {
	checkout *services.CheckoutService
	catalog  *services.CatalogService
	orders   *services.OrderService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *services.CheckoutService, catalog *services.CatalogService, orders *services.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		catalog:  catalog,
		orders:   orders,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app. Literal
// routes are registered ahead of the parameterized session routes.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/start", h.HandleStart)
	checkoutRoutes.Post("/confirm", h.HandleConfirm)
	checkoutRoutes.Get("/:id", h.HandleGetSession)
	checkoutRoutes.Delete("/:id", h.HandleCancel)
	checkoutRoutes.Put("/:id/quantity", h.HandleSetQuantity)
	checkoutRoutes.Post("/:id/enter", h.HandleEnter)
	checkoutRoutes.Post("/:id/username", h.HandleSubmitUsername)
	checkoutRoutes.Post("/:id/delivery", h.HandleSubmitDelivery)
	checkoutRoutes.Post("/:id/payment", h.HandleSubmitPayment)
	checkoutRoutes.Post("/:id/complete", h.HandleComplete)
	checkoutRoutes.Post("/:id/back", h.HandleBack)
}

// HandleStart opens a checkout session for a product.
func (h *CheckoutHandler) HandleStart(c *fiber.Ctx) error {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.Start(c.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return productNotFound(c)
		}
		if errors.Is(err, services.ErrComingSoon) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Coming Soon",
			})
		}
		log.Printf("Error starting checkout for product %d: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not start checkout",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.snapshot(session))
}

// HandleGetSession returns the current state of a checkout session.
func (h *CheckoutHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.checkout.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleSetQuantity updates the quantity within [1, 10]; out-of-range
// values leave the session untouched.
func (h *CheckoutHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.SetQuantity(c.Context(), c.Params("id"), req.Quantity)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleEnter moves a session out of the cart via "Buy Now" or
// "Add to Cart".
func (h *CheckoutHandler) HandleEnter(c *fiber.Ctx) error {
	var req struct {
		Entry models.EntryAction `json:"entry"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.Enter(c.Context(), c.Params("id"), req.Entry)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleSubmitUsername records the in-game username form.
func (h *CheckoutHandler) HandleSubmitUsername(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username is required",
		})
	}

	session, err := h.checkout.SubmitUsername(c.Context(), c.Params("id"), req.Username)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleSubmitDelivery records the delivery form.
func (h *CheckoutHandler) HandleSubmitDelivery(c *fiber.Ctx) error {
	var profile models.BuyerProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.StructExcept(&profile, "Username"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All delivery fields are required",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.SubmitDelivery(c.Context(), c.Params("id"), profile)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleSubmitPayment records the card form. The stage stays at payment
// until the submission round-trip completes.
func (h *CheckoutHandler) HandleSubmitPayment(c *fiber.Ctx) error {
	var card models.PaymentDetails
	if err := c.BodyParser(&card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(&card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All payment fields are required",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.SubmitPayment(c.Context(), c.Params("id"), card)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleComplete advances payment to confirmation after a successful
// submission.
func (h *CheckoutHandler) HandleComplete(c *fiber.Ctx) error {
	session, err := h.checkout.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleCancel abandons a checkout attempt and discards its session.
func (h *CheckoutHandler) HandleCancel(c *fiber.Ctx) error {
	if err := h.checkout.Cancel(c.Context(), c.Params("id")); err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Checkout cancelled",
	})
}

// HandleBack rewinds a session one stage without discarding input.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	session, err := h.checkout.Back(c.Context(), c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(h.snapshot(session))
}

// HandleConfirm processes an order confirmation. The session token is not
// verified against the payment provider; client-supplied data is trusted.
func (h *CheckoutHandler) HandleConfirm(c *fiber.Ctx) error {
	var req models.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error processing checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred processing your order",
		})
	}

	order, err := h.orders.Confirm(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingSessionID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing session ID",
			})
		}
		log.Printf("Error processing checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred processing your order",
		})
	}

	return c.JSON(models.ConfirmResponse{
		Success: true,
		Order:   *order,
	})
}

// snapshot is the session view returned by every stage operation; the total
// is recomputed on each render so it cannot drift between stages.
func (h *CheckoutHandler) snapshot(session *models.CheckoutSession) fiber.Map {
	snap := fiber.Map{
		"id":          session.ID,
		"product_id":  session.ProductID,
		"stage":       session.Stage,
		"in_checkout": session.InCheckout,
		"quantity":    session.Quantity,
		"buyer":       session.Buyer,
	}
	if product, err := h.catalog.GetProductByID(session.ProductID); err == nil {
		snap["product_name"] = product.Name
		snap["category"] = h.catalog.CategoryName(product.CategoryID)
	}
	if total, err := h.checkout.Total(session); err == nil {
		snap["total"] = total
	}
	return snap
}

func (h *CheckoutHandler) sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Checkout session not found",
		})
	}
	if errors.Is(err, models.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Invalid checkout stage transition",
			"error":   err.Error(),
		})
	}
	log.Printf("Checkout session error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process checkout request",
		"error":   err.Error(),
	})
}
