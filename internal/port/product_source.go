package port

import (
	"context"

	"github.com/cplinktech/storefront/internal/core/domain"
)

type ProductSource interface {
	// FetchProducts returns the raw catalog list
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
