package domain

// SessionRequest is the body accepted by the checkout session proxy.
type SessionRequest struct {
	Items    Cart     `json:"items"`
	Customer Customer `json:"customer"`
}

type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	Currency   string
}

type CheckoutSession struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}
