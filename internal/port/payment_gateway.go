package port

import (
	"context"

	"github.com/cplinktech/storefront/internal/core/domain"
)

type PaymentGateway interface {
	// CreateCheckoutSession creates a hosted checkout session and returns its URL
	CreateCheckoutSession(ctx context.Context, session domain.CheckoutSession) (string, error)
}
