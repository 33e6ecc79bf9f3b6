package document

import (
	"errors"
	"fmt"

	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrSetIsNotConstructed is returned when validating a zero-value Set.
var ErrSetIsNotConstructed = errors.New("Set must be created via NewSet constructor")

// Set groups a purchase order with the documents correlated to it by PO
// number. The consistency engine links documents into a Set and then asks it
// quantity questions that span documents, such as the cumulative quantity
// shipped against a given order line.
type Set struct {
	purchaseOrder   *PurchaseOrder
	acknowledgments []*Acknowledgment
	shipNotices     []*ShipNotice
	invoices        []*Invoice

	guard guard.ConstructorGuard
}

// NewSet opens a document set around a purchase order.
func NewSet(po *PurchaseOrder) (*Set, error) {
	if po == nil {
		return nil, errs.NewValueIsRequiredError("purchaseOrder")
	}
	if err := po.Validate(); err != nil {
		return nil, err
	}

	return &Set{
		purchaseOrder: po,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Set was created through NewSet.
func (s *Set) Validate() error {
	return s.guard.Validate(ErrSetIsNotConstructed)
}

// PurchaseOrder returns the order that opened the set.
func (s *Set) PurchaseOrder() *PurchaseOrder {
	return s.purchaseOrder
}

// Acknowledgments returns the attached acknowledgments in attachment order.
func (s *Set) Acknowledgments() []*Acknowledgment {
	return append([]*Acknowledgment(nil), s.acknowledgments...)
}

// ShipNotices returns the attached ship notices in attachment order.
func (s *Set) ShipNotices() []*ShipNotice {
	return append([]*ShipNotice(nil), s.shipNotices...)
}

// Invoices returns the attached invoices in attachment order.
func (s *Set) Invoices() []*Invoice {
	return append([]*Invoice(nil), s.invoices...)
}

// AttachAcknowledgment adds an acknowledgment correlated to the set's PO.
func (s *Set) AttachAcknowledgment(ack *Acknowledgment) error {
	if ack == nil {
		return errs.NewValueIsRequiredError("acknowledgment")
	}
	if err := errors.Join(s.Validate(), ack.Validate(), s.checkCorrelation(ack)); err != nil {
		return err
	}
	s.acknowledgments = append(s.acknowledgments, ack)
	return nil
}

// AttachShipNotice adds a ship notice correlated to the set's PO.
func (s *Set) AttachShipNotice(asn *ShipNotice) error {
	if asn == nil {
		return errs.NewValueIsRequiredError("shipNotice")
	}
	if err := errors.Join(s.Validate(), asn.Validate(), s.checkCorrelation(asn)); err != nil {
		return err
	}
	s.shipNotices = append(s.shipNotices, asn)
	return nil
}

// AttachInvoice adds an invoice correlated to the set's PO.
func (s *Set) AttachInvoice(inv *Invoice) error {
	if inv == nil {
		return errs.NewValueIsRequiredError("invoice")
	}
	if err := errors.Join(s.Validate(), inv.Validate(), s.checkCorrelation(inv)); err != nil {
		return err
	}
	s.invoices = append(s.invoices, inv)
	return nil
}

// CumulativeShipped returns the total quantity shipped against the given
// order line across every attached ship notice. Notice lines are matched to
// the order line first by line number, then by product reference when the
// numbering differs between documents.
func (s *Set) CumulativeShipped(poLine Line) int {
	shipped := 0
	for _, asn := range s.shipNotices {
		if match, ok := MatchLine(poLine, asn.lines); ok {
			shipped += match.quantity
		}
	}
	return shipped
}

// IsFullyShipped reports whether every order line has cumulative shipments of
// at least the ordered quantity.
func (s *Set) IsFullyShipped() bool {
	for _, line := range s.purchaseOrder.lines {
		if s.CumulativeShipped(line) < line.quantity {
			return false
		}
	}
	return true
}

// HasAnyShipment reports whether any attached ship notice shipped a nonzero
// quantity against the order.
func (s *Set) HasAnyShipment() bool {
	for _, asn := range s.shipNotices {
		for _, line := range asn.lines {
			if line.quantity > 0 {
				return true
			}
		}
	}
	return false
}

func (s *Set) checkCorrelation(doc Commercial) error {
	if doc.PONumber() != s.purchaseOrder.poNumber {
		return errs.NewValueIsInvalidErrorWithCause("poNumber", fmt.Errorf(
			"%s %s references PO %s, set is for PO %s",
			doc.Kind(), doc.Number(), doc.PONumber(), s.purchaseOrder.poNumber))
	}
	return nil
}

// MatchLine finds the line in candidates that corresponds to target: an exact
// line-number match wins, otherwise the first product-reference match.
func MatchLine(target Line, candidates []Line) (Line, bool) {
	for _, candidate := range candidates {
		if candidate.lineNumber == target.lineNumber {
			return candidate, true
		}
	}
	for _, candidate := range candidates {
		if candidate.MatchesProduct(target) {
			return candidate, true
		}
	}
	return Line{}, false
}
