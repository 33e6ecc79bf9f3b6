package order

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// FulfillmentStatus tracks shipment completeness independently of the order
// lifecycle: how much of the ordered quantity has actually shipped.
type FulfillmentStatus int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment status.
	FulfillmentUnknown FulfillmentStatus = iota

	// FulfillmentPending means nothing has shipped yet.
	FulfillmentPending

	// FulfillmentPartial means some, but not all, ordered units have shipped.
	FulfillmentPartial

	// FulfillmentComplete means cumulative shipments cover every ordered line.
	FulfillmentComplete

	// FulfillmentCancelled means the order was cancelled before completion.
	FulfillmentCancelled
)

func getFulfillmentStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentUnknown:   "unknown",
		FulfillmentPending:   "pending",
		FulfillmentPartial:   "partial",
		FulfillmentComplete:  "complete",
		FulfillmentCancelled: "cancelled",
	}
}

// FulfillmentStatusFromString maps a wire-format name onto the enum.
func FulfillmentStatusFromString(s string) (FulfillmentStatus, error) {
	for status, str := range getFulfillmentStrings() {
		if status != FulfillmentUnknown && str == s {
			return status, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"fulfillmentStatus", fmt.Errorf("%q is not a known fulfillment status", s))
}

// Validate checks if the FulfillmentStatus value is valid.
func (s FulfillmentStatus) Validate() error {
	if s == FulfillmentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillmentStatus", fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	if _, ok := getFulfillmentStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillmentStatus", fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	return nil
}

// String returns the wire-format name of the fulfillment status.
func (s FulfillmentStatus) String() string {
	if str, ok := getFulfillmentStrings()[s]; ok {
		return str
	}
	return "unknown"
}
