package port

import (
	"context"

	"github.com/cplinktech/storefront/internal/core/domain"
)

type OrderLog interface {
	// Append records a simulated order durably
	Append(ctx context.Context, order domain.Order) error

	// List returns every recorded order, oldest first
	List(ctx context.Context) ([]domain.Order, error)
}
