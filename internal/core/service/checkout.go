package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

// CheckoutService makes exactly one attempt at a hosted payment session and
// otherwise records a simulated order locally.
type CheckoutService struct {
	sessions port.SessionClient
	orders   port.OrderLog
	cart     *CartStore
	logger   *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewCheckoutService wires the initiator. sessions may be nil when no session
// proxy is configured; every checkout then takes the simulated path.
func NewCheckoutService(sessions port.SessionClient, orders port.OrderLog, cart *CartStore, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		orders:   orders,
		cart:     cart,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *CheckoutService) Initiate(ctx context.Context, cart domain.Cart, customer domain.Customer) (domain.Outcome, error) {
	if cart.IsEmpty() {
		return domain.Outcome{}, domain.ErrEmptyCart
	}

	url, cause := s.requestSession(ctx, cart, customer)
	if cause == nil {
		s.logger.Info("payment session created", zap.Int("lines", len(cart)))
		return domain.Redirect(url), nil
	}
	s.logger.Warn("payment session unavailable, placing simulated order", zap.Error(cause))

	// The attempt has already started; a cancelled caller must not leave a
	// recorded order with an uncleared cart.
	ctx = context.WithoutCancel(ctx)

	order := domain.NewOrder(s.newID(), customer, cart, s.now().UTC())
	if err := s.orders.Append(ctx, order); err != nil {
		return domain.Outcome{}, fmt.Errorf("record simulated order: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return domain.Outcome{}, fmt.Errorf("clear cart: %w", err)
	}

	s.logger.Info("simulated order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total_cents", order.TotalCents),
	)
	return domain.SimulatedOrderPlaced(order, cause), nil
}

func (s *CheckoutService) requestSession(ctx context.Context, cart domain.Cart, customer domain.Customer) (string, error) {
	if s.sessions == nil {
		return "", fmt.Errorf("%w: no session endpoint configured", domain.ErrNetworkUnavailable)
	}

	url, err := s.sessions.CreateSession(ctx, domain.SessionRequest{Items: cart, Customer: customer})
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("%w: session response has no url", domain.ErrNetworkUnavailable)
	}
	return url, nil
}
