package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"servermart/internal/models"
	"servermart/internal/repositories"
)

// ErrMissingSessionID is returned when a confirm request carries no session
// token.
var ErrMissingSessionID = errors.New("missing session ID")

// PurchaseRecorder forwards confirmed orders to the downstream
// purchase-recording service. Failures are best effort: the order service
// logs them and never surfaces them to the buyer.
type PurchaseRecorder interface {
	Record(ctx context.Context, payload []interface{}) error
}

// PurchasePublisher emits purchase events to the message broker, also best
// effort.
type PurchasePublisher interface {
	PublishPurchaseRecorded(event map[string]interface{}) error
}

// OrderService builds normalized orders from confirm requests and drives
// the best-effort side effects.
type OrderService struct {
	catalog   repositories.CatalogRepository
	orders    *repositories.OrderLog
	recorder  PurchaseRecorder
	publisher PurchasePublisher
}

// NewOrderService creates a new OrderService. The recorder and publisher
// may be nil, in which case the corresponding side effect is skipped.
func NewOrderService(catalog repositories.CatalogRepository, orders *repositories.OrderLog, rec PurchaseRecorder, pub PurchasePublisher) *OrderService {
	return &OrderService{
		catalog:   catalog,
		orders:    orders,
		recorder:  rec,
		publisher: pub,
	}
}

// Confirm validates the session token, recomputes the total from unit price
// and quantity, records the normalized order, and forwards it downstream
// best-effort. It always returns the order on success even when a forward
// fails; the session is deliberately not verified against the payment
// provider.
func (s *OrderService) Confirm(ctx context.Context, req models.ConfirmRequest) (*models.Order, error) {
	if req.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	order := &models.Order{
		CustomerEmail: req.Customer.Email,
		TotalPaid:     req.Product.Price * float64(req.Product.Quantity),
		Username:      req.Customer.Username,
		Items: []models.OrderItem{
			{
				Name:      req.Product.Name,
				Quantity:  req.Product.Quantity,
				UnitPrice: req.Product.Price,
			},
		},
		DeliveryAddress: models.DeliveryAddress{
			Address:    req.Customer.Address,
			City:       req.Customer.City,
			PostalCode: req.Customer.PostalCode,
			Country:    req.Customer.Country,
			Phone:      req.Customer.Phone,
		},
	}

	s.orders.Append(models.OrderRecord{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Order:     *order,
		CreatedAt: time.Now(),
	})

	s.forward(ctx, req.SessionID, order)

	return order, nil
}

// Orders exposes the process-local order log.
func (s *OrderService) Orders() []models.OrderRecord {
	return s.orders.All()
}

// forward sends the order plus matching catalog entries to the recording
// service and publishes a purchase event. Both are best effort: failures
// are logged and swallowed, never reported to the caller.
func (s *OrderService) forward(ctx context.Context, sessionID string, order *models.Order) {
	if s.recorder != nil {
		payload := []interface{}{order}
		matches, err := s.catalog.GetByName(order.Items[0].Name)
		if err != nil {
			log.Printf("Warning: failed to look up catalog entries for %q: %v", order.Items[0].Name, err)
		} else {
			for _, p := range matches {
				payload = append(payload, p)
			}
		}
		if err := s.recorder.Record(ctx, payload); err != nil {
			log.Printf("Warning: failed to send purchase data to recorder: %v", err)
		}
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"sessionID": sessionID,
			"email":     order.CustomerEmail,
			"username":  order.Username,
			"total":     order.TotalPaid,
			"item":      order.Items[0].Name,
			"quantity":  order.Items[0].Quantity,
		}
		if err := s.publisher.PublishPurchaseRecorded(event); err != nil {
			log.Printf("Warning: failed to publish purchase event for session %s: %v", sessionID, err)
		}
	}
}
