package product

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// Status represents the catalog lifecycle state of a product.
// It implements a state machine with defined transitions:
//
//	PendingApproval ──> Active <──> Inactive
//	                      │ ▲          │
//	                      ▼ │          │
//	                  OutOfStock       │
//	                      │            │
//	                      └──> Discontinued <──┘
//
// Discontinued is a final state with no further transitions allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// PendingApproval is the initial status for a newly listed product awaiting
	// compliance review.
	PendingApproval

	// Active products are sellable and appear in catalogs.
	Active

	// Inactive products are hidden from catalogs but may be reactivated.
	Inactive

	// OutOfStock products are sellable listings with no available inventory.
	OutOfStock

	// Discontinued products are permanently delisted. Terminal state.
	Discontinued
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		PendingApproval: "pending_approval",
		Active:          "active",
		Inactive:        "inactive",
		OutOfStock:      "out_of_stock",
		Discontinued:    "discontinued",
	}
}

// statusTransitions is the exhaustive transition table. A status maps to the
// set of statuses it may move to; absent pairs are illegal.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingApproval: {Active, Inactive},
		Active:          {Inactive, OutOfStock, Discontinued},
		Inactive:        {Active, Discontinued},
		OutOfStock:      {Active, Discontinued},
		Discontinued:    {},
	}
}

// StatusFromString maps a wire-format status name onto the enum.
// Unknown states are rejected at the boundary rather than propagated.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a known product status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid product status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether moving to the target status is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the move is legal.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition product from %s to %s", s.String(), target.String()),
		)
	}
	return target, nil
}
