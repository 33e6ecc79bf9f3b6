package order

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// Status represents the order lifecycle state. Transitions run strictly
// forward through the listed sequence; Cancelled is reachable from any
// non-terminal state, and Delivered and Cancelled accept no further
// transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Draft is an order under composition, not yet sent to the seller.
	Draft

	// Submitted means the purchase order has been sent to the seller.
	Submitted

	// Acknowledged means the seller has responded to the order.
	Acknowledged

	// Processing means the seller is picking and packing; shipments may be
	// partial while the order stays in this state.
	Processing

	// Shipped means cumulative shipments cover every ordered line.
	Shipped

	// Delivered is terminal: the buyer has received the goods.
	Delivered

	// Cancelled is terminal: the order was withdrawn or rejected.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Draft:         "draft",
		Submitted:     "submitted",
		Acknowledged:  "acknowledged",
		Processing:    "processing",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// statusTransitions is the exhaustive legal-transition table. A state absent
// from a row's set is an illegal target from that row.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:        {Submitted, Cancelled},
		Submitted:    {Acknowledged, Cancelled},
		Acknowledged: {Processing, Cancelled},
		Processing:   {Shipped, Cancelled},
		Shipped:      {Delivered, Cancelled},
		Delivered:    {},
		Cancelled:    {},
	}
}

// StatusFromString maps a wire-format status name onto the enum.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
