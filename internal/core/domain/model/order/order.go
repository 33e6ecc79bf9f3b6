package order

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when validating a zero-value Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the lifecycle aggregate keyed by PO number. Documents arriving for
// the order drive its transitions: submission, acknowledgment, shipments, and
// delivery each move the status forward through the transition table, and a
// failed transition leaves the aggregate untouched.
//
// Shipped quantities accumulate across ship notices; the fulfillment status
// flips from pending to partial to complete as the cumulative count reaches
// the ordered total.
type Order struct {
	id          kernel.UUID
	poNumber    string
	buyerGLN    kernel.GLN
	sellerGLN   kernel.GLN
	status      Status
	fulfillment FulfillmentStatus

	orderedUnits int
	shippedUnits int

	submittedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a draft order for the given purchase order key.
//
// Parameters:
//   - id: Aggregate identity
//   - poNumber: The purchase order correlation key, unique per order
//   - buyerGLN, sellerGLN: GS1 location numbers of the trading parties
//   - orderedUnits: Total units across all PO lines (must be > 0)
func NewOrder(
	id kernel.UUID,
	poNumber string,
	buyerGLN, sellerGLN kernel.GLN,
	orderedUnits int,
) (*Order, error) {
	o := &Order{
		status:      Draft,
		fulfillment: FulfillmentPending,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setPONumber(poNumber),
		o.setParties(buyerGLN, sellerGLN),
		o.setOrderedUnits(orderedUnits),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	poNumber string,
	buyerGLN, sellerGLN kernel.GLN,
	status Status,
	fulfillment FulfillmentStatus,
	orderedUnits, shippedUnits int,
	submittedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, poNumber, buyerGLN, sellerGLN, orderedUnits)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), fulfillment.Validate()); err != nil {
		return nil, err
	}
	if shippedUnits < 0 {
		return nil, errs.NewValueIsOutOfRangeError("shippedUnits", shippedUnits, 0, orderedUnits)
	}

	o.status = status
	o.fulfillment = fulfillment
	o.shippedUnits = shippedUnits
	o.submittedAt = submittedAt
	return o, nil
}

// Validate checks that the Order was created through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the aggregate identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PONumber returns the purchase order correlation key.
func (o *Order) PONumber() string {
	return o.poNumber
}

// BuyerGLN returns the ordering party's GS1 location number.
func (o *Order) BuyerGLN() kernel.GLN {
	return o.buyerGLN
}

// SellerGLN returns the supplying party's GS1 location number.
func (o *Order) SellerGLN() kernel.GLN {
	return o.sellerGLN
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Fulfillment returns the current shipment-completeness state.
func (o *Order) Fulfillment() FulfillmentStatus {
	return o.fulfillment
}

// OrderedUnits returns the total units ordered across all lines.
func (o *Order) OrderedUnits() int {
	return o.orderedUnits
}

// ShippedUnits returns the cumulative units shipped so far.
func (o *Order) ShippedUnits() int {
	return o.shippedUnits
}

// SubmittedAt returns when the order was submitted to the seller, or nil.
func (o *Order) SubmittedAt() *time.Time {
	return o.submittedAt
}

// Submit moves a draft order to submitted, stamping the submission time.
func (o *Order) Submit(at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.transitionTo(Submitted, o.poNumber); err != nil {
		return err
	}
	o.submittedAt = &at
	return nil
}

// Acknowledge applies the seller's response: an accepting acknowledgment moves
// the order to acknowledged, a rejecting one cancels it.
func (o *Order) Acknowledge(documentRef string, rejected bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if rejected {
		return o.cancel(documentRef)
	}
	return o.transitionTo(Acknowledged, documentRef)
}

// StartProcessing moves an acknowledged order into fulfillment.
func (o *Order) StartProcessing(documentRef string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.transitionTo(Processing, documentRef)
}

// RecordShipment accumulates a ship notice's units against the order. A
// shipment completing the ordered total moves the order to shipped; a partial
// one keeps it processing with fulfillment marked partial. Shipments are only
// accepted once the order has been acknowledged.
func (o *Order) RecordShipment(documentRef string, units int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if units <= 0 {
		return errs.NewValueIsOutOfRangeError("units", units, 1, o.orderedUnits)
	}

	target := Processing
	if o.shippedUnits+units >= o.orderedUnits {
		target = Shipped
	}

	if o.status.IsTerminal() {
		return &TerminalStateError{State: o.status, DocumentRef: documentRef}
	}
	if o.status != Acknowledged && o.status != Processing {
		return &InvalidTransitionError{From: o.status, To: target, DocumentRef: documentRef}
	}

	o.shippedUnits += units
	o.status = target
	if target == Shipped {
		o.fulfillment = FulfillmentComplete
	} else {
		o.fulfillment = FulfillmentPartial
	}
	return nil
}

// Deliver moves a shipped order to its delivered terminal state.
func (o *Order) Deliver(documentRef string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.transitionTo(Delivered, documentRef)
}

// Cancel withdraws the order. Legal from any non-terminal state.
func (o *Order) Cancel(documentRef string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.cancel(documentRef)
}

func (o *Order) cancel(documentRef string) error {
	if err := o.transitionTo(Cancelled, documentRef); err != nil {
		return err
	}
	o.fulfillment = FulfillmentCancelled
	return nil
}

// transitionTo applies the transition table. The aggregate is mutated only
// when the transition is legal.
func (o *Order) transitionTo(target Status, documentRef string) error {
	if o.status.IsTerminal() {
		return &TerminalStateError{State: o.status, DocumentRef: documentRef}
	}
	if !o.status.CanTransitionTo(target) {
		return &InvalidTransitionError{From: o.status, To: target, DocumentRef: documentRef}
	}
	o.status = target
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	o.poNumber = poNumber
	return nil
}

func (o *Order) setParties(buyerGLN, sellerGLN kernel.GLN) error {
	if err := errors.Join(buyerGLN.Validate(), sellerGLN.Validate()); err != nil {
		return err
	}
	o.buyerGLN = buyerGLN
	o.sellerGLN = sellerGLN
	return nil
}

func (o *Order) setOrderedUnits(orderedUnits int) error {
	if orderedUnits <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderedUnits", fmt.Errorf("%d is not greater than 0", orderedUnits))
	}
	o.orderedUnits = orderedUnits
	return nil
}
