package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

// Collision records two catalog entries whose trimmed names were equal. The
// later entry replaced the earlier one in the lookup.
type Collision struct {
	Name     string
	Replaced domain.Product
	Winner   domain.Product
}

// Catalog is an immutable lookup of products keyed by trimmed name. Matching
// is otherwise case-sensitive.
type Catalog struct {
	byName     map[string]domain.Product
	names      []string
	collisions []Collision
}

func NewCatalog(products []domain.Product) *Catalog {
	c := &Catalog{byName: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		p.Name = name
		if p.ID == "" {
			p.ID = domain.Slug(name)
		}

		if prev, ok := c.byName[name]; ok {
			c.collisions = append(c.collisions, Collision{Name: name, Replaced: prev, Winner: p})
		} else {
			c.names = append(c.names, name)
		}
		c.byName[name] = p
	}
	return c
}

// LoadCatalog fetches the catalog once. On failure it still returns a usable,
// empty catalog alongside an error wrapping domain.ErrNetworkUnavailable.
func LoadCatalog(ctx context.Context, source port.ProductSource, logger *zap.Logger) (*Catalog, error) {
	if source == nil {
		return NewCatalog(nil), fmt.Errorf("%w: no catalog source configured", domain.ErrNetworkUnavailable)
	}

	products, err := source.FetchProducts(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNetworkUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrNetworkUnavailable, err)
		}
		return NewCatalog(nil), fmt.Errorf("load catalog: %w", err)
	}

	catalog := NewCatalog(products)
	for _, c := range catalog.Collisions() {
		logger.Warn("catalog name collision, later entry wins",
			zap.String("name", c.Name),
			zap.String("replaced_id", c.Replaced.ID),
			zap.String("winner_id", c.Winner.ID),
		)
	}
	logger.Debug("catalog loaded", zap.Int("products", catalog.Len()))
	return catalog, nil
}

func (c *Catalog) Lookup(name string) (domain.Product, bool) {
	p, ok := c.byName[strings.TrimSpace(name)]
	return p, ok
}

// ProductFor returns the catalog entry for name or a placeholder priced at
// domain.PlaceholderPriceCents.
func (c *Catalog) ProductFor(name string) domain.Product {
	if p, ok := c.Lookup(name); ok {
		return p
	}
	return domain.PlaceholderProduct(name)
}

// Products lists entries in the order their names first appeared.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.byName)
}

func (c *Catalog) Collisions() []Collision {
	out := make([]Collision, len(c.collisions))
	copy(out, c.collisions)
	return out
}
