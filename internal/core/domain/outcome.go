package domain

type OutcomeKind int

const (
	OutcomeRedirect OutcomeKind = iota + 1
	OutcomeSimulatedOrder
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeSimulatedOrder:
		return "simulated_order"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Kind  OutcomeKind
	URL   string
	Order *Order
	// Cause is why the payment session could not be obtained on the simulated path.
	Cause error
}

func Redirect(url string) Outcome {
	return Outcome{Kind: OutcomeRedirect, URL: url}
}

func SimulatedOrderPlaced(order Order, cause error) Outcome {
	return Outcome{Kind: OutcomeSimulatedOrder, Order: &order, Cause: cause}
}
