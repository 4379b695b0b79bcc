package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

type SessionConfig struct {
	Currency      string
	DefaultOrigin string
}

// SessionService maps a cart snapshot to payment line items and asks the
// gateway for a hosted checkout page.
type SessionService struct {
	gateway port.PaymentGateway
	cfg     SessionConfig
	logger  *zap.Logger
}

// NewSessionService accepts a nil gateway; the service then reports
// domain.ErrBackendMisconfigured for every request.
func NewSessionService(gateway port.PaymentGateway, cfg SessionConfig, logger *zap.Logger) *SessionService {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.DefaultOrigin == "" {
		cfg.DefaultOrigin = "http://localhost:3000"
	}
	return &SessionService{gateway: gateway, cfg: cfg, logger: logger}
}

func (s *SessionService) Configured() bool {
	return s.gateway != nil
}

func (s *SessionService) CreateSession(ctx context.Context, req domain.SessionRequest, origin string) (string, error) {
	if s.gateway == nil {
		return "", domain.ErrBackendMisconfigured
	}
	if len(req.Items) == 0 {
		return "", domain.ErrEmptyCart
	}

	base := strings.TrimRight(origin, "/")
	if base == "" {
		base = s.cfg.DefaultOrigin
	}

	lineItems := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, domain.LineItem{
			Name:       item.Name,
			UnitAmount: item.PriceCents,
			Quantity:   int64(item.Qty),
			Currency:   s.cfg.Currency,
		})
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, domain.CheckoutSession{
		LineItems:  lineItems,
		SuccessURL: base + "/?success=1",
		CancelURL:  base + "/?canceled=1",
		Metadata: map[string]string{
			"customer_name":  req.Customer.Name,
			"customer_email": req.Customer.Email,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created", zap.Int("line_items", len(lineItems)))
	return url, nil
}
