package domain

import "time"

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is recorded only when checkout falls back to the simulated path.
type Order struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Items      Cart      `json:"items"`
	TotalCents int64     `json:"total_cents"`
	Created    time.Time `json:"created"`
}

func NewOrder(id string, customer Customer, items Cart, created time.Time) Order {
	snapshot := make(Cart, len(items))
	copy(snapshot, items)
	return Order{
		ID:         id,
		Name:       customer.Name,
		Email:      customer.Email,
		Items:      snapshot,
		TotalCents: snapshot.TotalCents(),
		Created:    created,
	}
}
