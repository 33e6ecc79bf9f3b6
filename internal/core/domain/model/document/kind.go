package document

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// Kind tags the document variants that share the line-item shape.
// The numeric names in comments are the EDI X12 transaction sets the external
// codec maps each kind to.
type Kind int

const (
	// KindUnknown represents an invalid or undefined document kind.
	KindUnknown Kind = iota

	// KindPurchaseOrder is the buyer's order (X12 850).
	KindPurchaseOrder

	// KindAcknowledgment is the seller's response to an order (X12 855).
	KindAcknowledgment

	// KindShipNotice is the advance ship notice (X12 856).
	KindShipNotice

	// KindInvoice is the seller's bill (X12 810).
	KindInvoice
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:        "unknown",
		KindPurchaseOrder:  "purchase_order",
		KindAcknowledgment: "acknowledgment",
		KindShipNotice:     "ship_notice",
		KindInvoice:        "invoice",
	}
}

// KindFromString maps a wire-format kind name onto the enum.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind", fmt.Errorf("%q is not a known document kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%d is not a valid document kind", k))
	}
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%d is not a valid document kind", k))
	}
	return nil
}

// String returns the wire-format name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Commercial is the behavior shared by all four document kinds. The consistency
// engine is written against this interface rather than the concrete variants.
type Commercial interface {
	// Kind returns the document's variant tag.
	Kind() Kind

	// Number returns the document's own reference (PO number, ACK number,
	// ASN number, or invoice number depending on the kind).
	Number() string

	// PONumber returns the purchase order correlation key.
	PONumber() string

	// Lines returns the document's line items in line-number order.
	Lines() []Line
}
