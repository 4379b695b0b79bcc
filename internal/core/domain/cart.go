package domain

type CartLine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Qty        int    `json:"qty"`
}

func (l CartLine) Product() Product {
	return Product{ID: l.ID, Name: l.Name, PriceCents: l.PriceCents}
}

func (l CartLine) SubtotalCents() int64 {
	return l.PriceCents * int64(l.Qty)
}

// Cart keeps lines in the order their products were first added.
type Cart []CartLine

func (c Cart) Find(id string) (CartLine, bool) {
	for _, line := range c {
		if line.ID == id {
			return line, true
		}
	}
	return CartLine{}, false
}

// WithProduct returns a copy of c with p added once. An existing line keeps
// its original snapshot and only gains a unit.
func (c Cart) WithProduct(p Product) Cart {
	out := c.clone()
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Qty++
			return out
		}
	}
	return append(out, CartLine{ID: p.ID, Name: p.Name, PriceCents: p.PriceCents, Qty: 1})
}

// WithDelta returns a copy of c with delta applied to the line identified by
// id and every non-positive line dropped. The second result is false when no
// such line exists, in which case c is returned unchanged.
func (c Cart) WithDelta(id string, delta int) (Cart, bool) {
	if _, ok := c.Find(id); !ok {
		return c, false
	}

	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ID == id {
			line.Qty += delta
		}
		if line.Qty > 0 {
			out = append(out, line)
		}
	}
	return out, true
}

func (c Cart) TotalCents() int64 {
	var total int64
	for _, line := range c {
		total += line.SubtotalCents()
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, line := range c {
		n += line.Qty
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return out
}
