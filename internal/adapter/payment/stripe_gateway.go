package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

// StripeGateway creates hosted Stripe Checkout sessions for card payments.
type StripeGateway struct {
	sessions session.Client
}

// NewStripeGateway uses the live API backend when backend is nil.
func NewStripeGateway(secretKey string, backend stripe.Backend) *StripeGateway {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &StripeGateway{sessions: session.Client{B: backend, Key: secretKey}}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, cs domain.CheckoutSession) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(cs.SuccessURL),
		CancelURL:          stripe.String(cs.CancelURL),
	}
	params.Context = ctx

	for _, item := range cs.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(item.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	for k, v := range cs.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return "", errors.New(stripeErr.Msg)
		}
		return "", err
	}
	if s.URL == "" {
		return "", fmt.Errorf("checkout session %s has no url", s.ID)
	}
	return s.URL, nil
}

var _ port.PaymentGateway = (*StripeGateway)(nil)
