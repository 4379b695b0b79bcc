package port

import (
	"context"

	"github.com/cplinktech/storefront/internal/core/domain"
)

type SessionClient interface {
	// CreateSession asks the checkout session proxy for a hosted payment page URL
	CreateSession(ctx context.Context, req domain.SessionRequest) (string, error)
}
