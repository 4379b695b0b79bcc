package domain

import (
	"encoding/json"
	"strings"
)

// PlaceholderPriceCents is shown for catalog cards whose name is not in the catalog.
const PlaceholderPriceCents int64 = 1500000

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// UnmarshalJSON accepts "price" as an alias of "price_cents".
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		PriceCents *int64 `json:"price_cents"`
		Price      *int64 `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Name = raw.Name
	p.PriceCents = 0
	switch {
	case raw.PriceCents != nil:
		p.PriceCents = *raw.PriceCents
	case raw.Price != nil:
		p.PriceCents = *raw.Price
	}
	return nil
}

// Slug derives a product id from a display name: lower case, whitespace runs
// collapsed to a single dash.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func PlaceholderProduct(name string) Product {
	name = strings.TrimSpace(name)
	return Product{
		ID:         Slug(name),
		Name:       name,
		PriceCents: PlaceholderPriceCents,
	}
}
