package domain

import "fmt"

type Action int

const (
	ActionAdd Action = iota + 1
	ActionIncrement
	ActionDecrement
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionIncrement:
		return "inc"
	case ActionDecrement:
		return "dec"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

func ParseAction(s string) (Action, error) {
	switch s {
	case "add":
		return ActionAdd, nil
	case "inc":
		return ActionIncrement, nil
	case "dec":
		return ActionDecrement, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// CartCommand carries the product for ActionAdd; increment and decrement only
// use Product.ID.
type CartCommand struct {
	Action  Action
	Product Product
}
