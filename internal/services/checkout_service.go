package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"servermart/internal/models"
	"servermart/internal/repositories"
)

// ErrComingSoon is returned when checkout is attempted on a product that is
// not purchasable yet.
var ErrComingSoon = errors.New("product is not available yet")

// CheckoutService owns the checkout stage flow: it gates which form is
// active for a session and carries accumulated buyer input forward.
type CheckoutService struct {
	catalog  repositories.CatalogRepository
	sessions repositories.SessionStore
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(catalog repositories.CatalogRepository, sessions repositories.SessionStore) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Start resolves a product and opens a checkout session for it: quantity 1,
// stage cart. An unknown product ID fails with a not-found error; that is
// the only modeled failure of product selection.
func (s *CheckoutService) Start(ctx context.Context, productID int) (*models.CheckoutSession, error) {
	product, err := s.catalog.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to select product: %w", err)
	}
	if product.ComingSoon {
		return nil, fmt.Errorf("product %q: %w", product.Name, ErrComingSoon)
	}

	now := time.Now()
	session := &models.CheckoutSession{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Quantity:  1,
		Stage:     models.StageCart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Get returns the current session state.
func (s *CheckoutService) Get(ctx context.Context, id string) (*models.CheckoutSession, error) {
	return s.sessions.Get(ctx, id)
}

// SetQuantity updates the quantity if the value is within [1, 10]. An
// out-of-range value is silently ignored and the previous quantity is kept,
// mirroring increment controls that disable at the boundaries.
func (s *CheckoutService) SetQuantity(ctx context.Context, id string, quantity int) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if quantity < models.MinQuantity || quantity > models.MaxQuantity {
		return session, nil
	}

	session.Quantity = quantity
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Enter moves a session out of the cart stage: "Buy Now" goes to the
// username form, "Add to Cart" skips straight to delivery.
func (s *CheckoutService) Enter(ctx context.Context, id string, entry models.EntryAction) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := models.NextStage(session.Stage, entry)
	if err != nil {
		return nil, err
	}

	session.Stage = next
	session.InCheckout = true
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// SubmitUsername records the in-game username and advances to delivery.
func (s *CheckoutService) SubmitUsername(ctx context.Context, id string, username string) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageUsername {
		return nil, fmt.Errorf("username form submitted at stage %q: %w", session.Stage, models.ErrInvalidTransition)
	}

	session.Buyer.Username = username
	return s.advance(ctx, session)
}

// SubmitDelivery records the delivery fields and advances to payment. The
// username collected earlier is preserved.
func (s *CheckoutService) SubmitDelivery(ctx context.Context, id string, profile models.BuyerProfile) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StageDelivery {
		return nil, fmt.Errorf("delivery form submitted at stage %q: %w", session.Stage, models.ErrInvalidTransition)
	}

	username := session.Buyer.Username
	session.Buyer = profile
	if profile.Username == "" {
		session.Buyer.Username = username
	}
	return s.advance(ctx, session)
}

// SubmitPayment records the card fields without advancing; the move to
// confirmation happens only once the submission round-trip completes.
func (s *CheckoutService) SubmitPayment(ctx context.Context, id string, card models.PaymentDetails) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StagePayment {
		return nil, fmt.Errorf("payment form submitted at stage %q: %w", session.Stage, models.ErrInvalidTransition)
	}

	session.Card = card
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Complete moves a session from payment to confirmation after a successful
// submission.
func (s *CheckoutService) Complete(ctx context.Context, id string) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.StagePayment {
		return nil, fmt.Errorf("cannot complete checkout at stage %q: %w", session.Stage, models.ErrInvalidTransition)
	}
	return s.advance(ctx, session)
}

// Back rewinds one stage. Collected fields stay populated, so a buyer who
// returns sees their input intact. Backing out of the username form leaves
// checkout mode entirely.
func (s *CheckoutService) Back(ctx context.Context, id string) (*models.CheckoutSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prev, err := models.PrevStage(session.Stage)
	if err != nil {
		return nil, err
	}

	session.Stage = prev
	if prev == models.StageCart {
		session.InCheckout = false
	}
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Cancel abandons a checkout attempt and discards its session. Cancelling
// an unknown session fails with a not-found error so the caller can tell a
// stale ID from a successful abandon.
func (s *CheckoutService) Cancel(ctx context.Context, id string) error {
	if _, err := s.sessions.Get(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete checkout session: %w", err)
	}
	return nil
}

// Total renders the session's subtotal as shown on every stage.
func (s *CheckoutService) Total(session *models.CheckoutSession) (string, error) {
	product, err := s.catalog.GetByID(session.ProductID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve product for total: %w", err)
	}
	return models.Subtotal(product.Price, session.Quantity), nil
}

func (s *CheckoutService) advance(ctx context.Context, session *models.CheckoutSession) (*models.CheckoutSession, error) {
	next, err := models.NextStage(session.Stage, "")
	if err != nil {
		return nil, err
	}

	session.Stage = next
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}
