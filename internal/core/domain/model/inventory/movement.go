package inventory

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrStockMovementIsNotConstructed is returned when validating a zero-value StockMovement.
var ErrStockMovementIsNotConstructed = errors.New(
	"StockMovement must be created via NewStockMovement constructor")

// MovementType classifies a stock movement.
type MovementType int

const (
	// MovementUnknown represents an invalid or undefined movement type.
	MovementUnknown MovementType = iota

	// Receipt is inbound stock arriving from a supplier.
	Receipt

	// Transfer moves stock between two of the operator's locations.
	Transfer

	// Sale is outbound stock sold to a customer.
	Sale

	// Adjustment corrects a count after an audit or shrinkage finding.
	Adjustment

	// Destruction is regulated disposal of stock, outbound with no receiver.
	Destruction
)

func getMovementTypeStrings() map[MovementType]string {
	return map[MovementType]string{
		MovementUnknown: "unknown",
		Receipt:         "receipt",
		Transfer:        "transfer",
		Sale:            "sale",
		Adjustment:      "adjustment",
		Destruction:     "destruction",
	}
}

// MovementTypeFromString maps a wire-format movement type name onto the enum.
func MovementTypeFromString(s string) (MovementType, error) {
	for mt, str := range getMovementTypeStrings() {
		if mt != MovementUnknown && str == s {
			return mt, nil
		}
	}
	return MovementUnknown, errs.NewValueIsInvalidErrorWithCause(
		"movementType", fmt.Errorf("%q is not a known movement type", s))
}

// Validate checks if the MovementType value is valid.
func (mt MovementType) Validate() error {
	if mt == MovementUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"movementType", fmt.Errorf("%d is not a valid movement type", mt))
	}
	if _, ok := getMovementTypeStrings()[mt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"movementType", fmt.Errorf("%d is not a valid movement type", mt))
	}
	return nil
}

// String returns the wire-format name of the movement type.
func (mt MovementType) String() string {
	if str, ok := getMovementTypeStrings()[mt]; ok {
		return str
	}
	return "unknown"
}

// StockMovement is the immutable record of one quantity delta between two
// locations, or between a location and the outside world. Creation is its
// only lifecycle event; a mistaken movement is compensated by a Reversal,
// never edited.
type StockMovement struct {
	id           kernel.UUID
	sku          string
	movementType MovementType
	quantity     int
	fromLocation *kernel.GLN
	toLocation   *kernel.GLN
	batchNumber  string
	occurredAt   time.Time
	reversalOf   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStockMovement creates a movement record.
//
// Location requirements depend on the type: a receipt needs a destination, a
// sale or destruction needs a source, a transfer needs both (and they must
// differ), and an adjustment needs at least one end.
func NewStockMovement(
	id kernel.UUID,
	sku string,
	movementType MovementType,
	quantity int,
	fromLocation, toLocation *kernel.GLN,
	occurredAt time.Time,
) (StockMovement, error) {
	m := StockMovement{
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setSKU(sku),
		m.setMovementType(movementType),
		m.setQuantity(quantity),
		m.setLocations(movementType, fromLocation, toLocation),
	); err != nil {
		return StockMovement{}, err
	}

	if occurredAt.IsZero() {
		return StockMovement{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return m, nil
}

// Validate checks that the StockMovement was created through NewStockMovement.
func (m StockMovement) Validate() error {
	return m.guard.Validate(ErrStockMovementIsNotConstructed)
}

// ID returns the movement's identity.
func (m StockMovement) ID() kernel.UUID {
	return m.id
}

// SKU returns the moved product's reference.
func (m StockMovement) SKU() string {
	return m.sku
}

// Type returns the movement classification.
func (m StockMovement) Type() MovementType {
	return m.movementType
}

// Quantity returns the moved unit count, always positive.
func (m StockMovement) Quantity() int {
	return m.quantity
}

// FromLocation returns the source location, or nil for external inbound stock.
func (m StockMovement) FromLocation() *kernel.GLN {
	return m.fromLocation
}

// ToLocation returns the destination location, or nil for outbound stock.
func (m StockMovement) ToLocation() *kernel.GLN {
	return m.toLocation
}

// BatchNumber returns the regulated batch the movement draws from, empty if none.
func (m StockMovement) BatchNumber() string {
	return m.batchNumber
}

// OccurredAt returns when the movement took place.
func (m StockMovement) OccurredAt() time.Time {
	return m.occurredAt
}

// ReversalOf returns the identity of the movement this one compensates, or nil.
func (m StockMovement) ReversalOf() *kernel.UUID {
	return m.reversalOf
}

// WithBatchNumber returns a copy of the movement tied to a regulated batch.
func (m StockMovement) WithBatchNumber(batchNumber string) StockMovement {
	m.batchNumber = batchNumber
	return m
}

// Reversal creates the compensating movement: same type and quantity with the
// endpoints swapped, linked back to the original. The per-type location rules
// do not apply to a reversal since its endpoints mirror the original's.
// Reversing a reversal is rejected.
func (m StockMovement) Reversal(id kernel.UUID, occurredAt time.Time) (StockMovement, error) {
	if err := errors.Join(m.Validate(), id.Validate()); err != nil {
		return StockMovement{}, err
	}
	if m.reversalOf != nil {
		return StockMovement{}, errs.NewValueIsInvalidErrorWithCause(
			"reversalOf", fmt.Errorf("movement %s is itself a reversal", m.id))
	}
	if occurredAt.IsZero() {
		return StockMovement{}, errs.NewValueIsRequiredError("occurredAt")
	}

	original := m.id
	return StockMovement{
		id:           id,
		sku:          m.sku,
		movementType: m.movementType,
		quantity:     m.quantity,
		fromLocation: m.toLocation,
		toLocation:   m.fromLocation,
		batchNumber:  m.batchNumber,
		occurredAt:   occurredAt,
		reversalOf:   &original,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreStockMovement reconstructs a movement from persisted state. The
// per-type location rules are not re-applied because a stored reversal
// legitimately carries mirrored endpoints.
func RestoreStockMovement(
	id kernel.UUID,
	sku string,
	movementType MovementType,
	quantity int,
	fromLocation, toLocation *kernel.GLN,
	batchNumber string,
	occurredAt time.Time,
	reversalOf *kernel.UUID,
) (StockMovement, error) {
	m := StockMovement{
		fromLocation: fromLocation,
		toLocation:   toLocation,
		batchNumber:  batchNumber,
		occurredAt:   occurredAt,
		reversalOf:   reversalOf,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setSKU(sku),
		m.setMovementType(movementType),
		m.setQuantity(quantity),
	); err != nil {
		return StockMovement{}, err
	}

	if occurredAt.IsZero() {
		return StockMovement{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return m, nil
}

func (m *StockMovement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *StockMovement) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	m.sku = sku
	return nil
}

func (m *StockMovement) setMovementType(movementType MovementType) error {
	if err := movementType.Validate(); err != nil {
		return err
	}
	m.movementType = movementType
	return nil
}

func (m *StockMovement) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.quantity = quantity
	return nil
}

func (m *StockMovement) setLocations(movementType MovementType, from, to *kernel.GLN) error {
	if from != nil {
		if err := from.Validate(); err != nil {
			return err
		}
	}
	if to != nil {
		if err := to.Validate(); err != nil {
			return err
		}
	}

	switch movementType {
	case Receipt:
		if to == nil {
			return errs.NewValueIsRequiredError("toLocation")
		}
	case Sale, Destruction:
		if from == nil {
			return errs.NewValueIsRequiredError("fromLocation")
		}
	case Transfer:
		if from == nil {
			return errs.NewValueIsRequiredError("fromLocation")
		}
		if to == nil {
			return errs.NewValueIsRequiredError("toLocation")
		}
		if from.IsEqual(*to) {
			return errs.NewValueIsInvalidErrorWithCause(
				"toLocation", fmt.Errorf("transfer endpoints are both %s", to))
		}
	case Adjustment:
		if from == nil && to == nil {
			return errs.NewValueIsRequiredError("location")
		}
	}

	m.fromLocation = from
	m.toLocation = to
	return nil
}
