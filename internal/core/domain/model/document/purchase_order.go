package document

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrPurchaseOrderIsNotConstructed is returned when validating a zero-value PurchaseOrder.
var ErrPurchaseOrderIsNotConstructed = errors.New(
	"PurchaseOrder must be created via NewPurchaseOrder constructor")

// PurchaseOrder is the buyer's order document. It opens a document set: every
// acknowledgment, ship notice, and invoice correlates back to its PO number.
//
// A PurchaseOrder is immutable once constructed. Construction reconciles the
// totals, so a PO whose subtotal disagrees with the sum of its line totals, or
// whose total disagrees with subtotal plus tax, is never created.
type PurchaseOrder struct {
	id        kernel.UUID
	poNumber  string
	buyerGLN  kernel.GLN
	sellerGLN kernel.GLN
	shipToGLN *kernel.GLN
	lines     []Line
	subtotal  kernel.Money
	taxTotal  kernel.Money
	total     kernel.Money
	orderDate time.Time

	requestedDeliveryDate *time.Time
	notes                 string

	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates a reconciled purchase order.
//
// Parameters:
//   - id: Aggregate identity
//   - poNumber: The buyer's order reference, the correlation key for the set
//   - buyerGLN, sellerGLN: GS1 location numbers of the trading parties
//   - lines: At least one line item with unique line numbers
//   - subtotal, taxTotal, total: Document-level amounts, verified on construction
//   - orderDate: When the buyer issued the order
func NewPurchaseOrder(
	id kernel.UUID,
	poNumber string,
	buyerGLN, sellerGLN kernel.GLN,
	lines []Line,
	subtotal, taxTotal, total kernel.Money,
	orderDate time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		lines:     copyLines(lines),
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setPONumber(poNumber),
		po.setParties(buyerGLN, sellerGLN),
		validateLines(po.lines),
		po.setAmounts(subtotal, taxTotal, total),
	); err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}

	if err := reconcileTotals(po.poNumber, po.lines, po.subtotal, po.taxTotal, po.total); err != nil {
		return nil, err
	}

	return po, nil
}

// Validate checks that the PurchaseOrder was created through NewPurchaseOrder.
func (po *PurchaseOrder) Validate() error {
	return po.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// Kind returns KindPurchaseOrder.
func (po *PurchaseOrder) Kind() Kind {
	return KindPurchaseOrder
}

// Number returns the PO number; for a purchase order the document's own
// reference and the correlation key coincide.
func (po *PurchaseOrder) Number() string {
	return po.poNumber
}

// PONumber returns the purchase order correlation key.
func (po *PurchaseOrder) PONumber() string {
	return po.poNumber
}

// ID returns the aggregate identity.
func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

// BuyerGLN returns the ordering party's GS1 location number.
func (po *PurchaseOrder) BuyerGLN() kernel.GLN {
	return po.buyerGLN
}

// SellerGLN returns the supplying party's GS1 location number.
func (po *PurchaseOrder) SellerGLN() kernel.GLN {
	return po.sellerGLN
}

// ShipToGLN returns the delivery location, or nil when goods ship to the buyer.
func (po *PurchaseOrder) ShipToGLN() *kernel.GLN {
	return po.shipToGLN
}

// Lines returns a copy of the line items in their supplied order.
func (po *PurchaseOrder) Lines() []Line {
	return copyLines(po.lines)
}

// LineByNumber returns the line with the given number, if present.
func (po *PurchaseOrder) LineByNumber(lineNumber int) (Line, bool) {
	for _, line := range po.lines {
		if line.lineNumber == lineNumber {
			return line, true
		}
	}
	return Line{}, false
}

// Subtotal returns the reconciled sum of line totals.
func (po *PurchaseOrder) Subtotal() kernel.Money {
	return po.subtotal
}

// TaxTotal returns the document-level tax amount.
func (po *PurchaseOrder) TaxTotal() kernel.Money {
	return po.taxTotal
}

// Total returns the reconciled grand total.
func (po *PurchaseOrder) Total() kernel.Money {
	return po.total
}

// OrderDate returns when the buyer issued the order.
func (po *PurchaseOrder) OrderDate() time.Time {
	return po.orderDate
}

// RequestedDeliveryDate returns the buyer's requested delivery date, or nil.
func (po *PurchaseOrder) RequestedDeliveryDate() *time.Time {
	return po.requestedDeliveryDate
}

// Notes returns free-text remarks attached to the order.
func (po *PurchaseOrder) Notes() string {
	return po.notes
}

// SetRequestedDeliveryDate attaches the buyer's requested delivery date.
// The date must not precede the order date.
func (po *PurchaseOrder) SetRequestedDeliveryDate(date time.Time) error {
	if err := po.Validate(); err != nil {
		return err
	}
	if date.Before(po.orderDate) {
		return errs.NewValueIsInvalidError("requestedDeliveryDate")
	}
	po.requestedDeliveryDate = &date
	return nil
}

// SetShipToGLN attaches a delivery location distinct from the buyer's.
func (po *PurchaseOrder) SetShipToGLN(gln kernel.GLN) error {
	if err := errors.Join(po.Validate(), gln.Validate()); err != nil {
		return err
	}
	po.shipToGLN = &gln
	return nil
}

// SetNotes attaches free-text remarks.
func (po *PurchaseOrder) SetNotes(notes string) error {
	if err := po.Validate(); err != nil {
		return err
	}
	po.notes = notes
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	po.poNumber = poNumber
	return nil
}

func (po *PurchaseOrder) setParties(buyerGLN, sellerGLN kernel.GLN) error {
	if err := errors.Join(buyerGLN.Validate(), sellerGLN.Validate()); err != nil {
		return err
	}
	po.buyerGLN = buyerGLN
	po.sellerGLN = sellerGLN
	return nil
}

func (po *PurchaseOrder) setAmounts(subtotal, taxTotal, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), taxTotal.Validate(), total.Validate()); err != nil {
		return err
	}
	po.subtotal = subtotal
	po.taxTotal = taxTotal
	po.total = total
	return nil
}
