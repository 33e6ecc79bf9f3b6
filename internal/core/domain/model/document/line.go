package document

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/product"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when validating a zero-value Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is the line-item shape shared by all four document kinds: a numbered
// product reference with an integer quantity, an exact-decimal unit price, and
// the supplied line total.
//
// Line is an immutable value object. Construction reconciles the arithmetic:
// a Line whose total does not equal quantity times unit price (to the
// currency's minor-unit precision) is never created. Optional attributes are
// attached with the With* methods, which return modified copies.
type Line struct {
	lineNumber    int
	sku           string
	description   string
	gtin          *kernel.GTIN
	batchNumber   string
	unit          product.UnitOfMeasure
	quantity      int
	unitPrice     kernel.Money
	lineTotal     kernel.Money
	allowOverShip bool

	guard guard.ConstructorGuard
}

// NewLine creates a reconciled line item.
//
// Parameters:
//   - lineNumber: Position within the document (must be >= 1, unique per document)
//   - sku: Product reference (must not be empty)
//   - description: Free-text item description
//   - quantity: Units ordered/shipped/billed (must be >= 0)
//   - unitPrice: Price per unit (must be non-negative)
//   - lineTotal: Supplied extended total, verified against quantity * unitPrice
//
// Returns an ArithmeticMismatchError when the supplied total disagrees with the
// recomputed value by more than the currency's minor-unit epsilon.
func NewLine(
	lineNumber int,
	sku, description string,
	quantity int,
	unitPrice, lineTotal kernel.Money,
) (Line, error) {
	line := Line{
		description: description,
		unit:        product.Each,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setLineNumber(lineNumber),
		line.setSKU(sku),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setLineTotal(lineTotal),
	); err != nil {
		return Line{}, err
	}

	if err := line.reconcile(); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate checks that the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// LineNumber returns the line's position within its document.
func (l Line) LineNumber() int {
	return l.lineNumber
}

// SKU returns the product reference.
func (l Line) SKU() string {
	return l.sku
}

// Description returns the free-text item description.
func (l Line) Description() string {
	return l.description
}

// GTIN returns the line's GS1 trade item number, or nil if absent.
func (l Line) GTIN() *kernel.GTIN {
	return l.gtin
}

// BatchNumber returns the regulated batch the line draws from, empty if none.
func (l Line) BatchNumber() string {
	return l.batchNumber
}

// Unit returns the unit of measure for the quantity.
func (l Line) Unit() product.UnitOfMeasure {
	return l.unit
}

// Quantity returns the integer quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the exact-decimal price per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// LineTotal returns the reconciled extended total.
func (l Line) LineTotal() kernel.Money {
	return l.lineTotal
}

// OverShipAllowed reports whether the buyer flagged this line as accepting
// shipments beyond the ordered quantity.
func (l Line) OverShipAllowed() bool {
	return l.allowOverShip
}

// WithGTIN returns a copy of the line carrying the given validated GTIN.
func (l Line) WithGTIN(gtin kernel.GTIN) (Line, error) {
	if err := gtin.Validate(); err != nil {
		return Line{}, err
	}
	l.gtin = &gtin
	return l, nil
}

// WithBatchNumber returns a copy of the line tied to a regulated batch.
func (l Line) WithBatchNumber(batchNumber string) Line {
	l.batchNumber = batchNumber
	return l
}

// WithUnit returns a copy of the line measured in the given unit.
func (l Line) WithUnit(unit product.UnitOfMeasure) (Line, error) {
	if err := unit.Validate(); err != nil {
		return Line{}, err
	}
	l.unit = unit
	return l, nil
}

// WithOverShipAllowed returns a copy of the line flagged as an over-ship
// exception: cumulative shipments against it may exceed the ordered quantity.
func (l Line) WithOverShipAllowed() Line {
	l.allowOverShip = true
	return l
}

// MatchesProduct reports whether the other line references the same product,
// by SKU or, when both carry one, by GTIN. Used as the fallback when line
// numbers were renumbered between documents.
func (l Line) MatchesProduct(other Line) bool {
	if l.gtin != nil && other.gtin != nil {
		return l.gtin.IsEqual(*other.gtin)
	}
	return l.sku == other.sku
}

// reconcile verifies lineTotal == quantity * unitPrice at minor-unit precision.
func (l Line) reconcile() error {
	computed, err := l.unitPrice.MulInt(l.quantity)
	if err != nil {
		return err
	}

	ok, err := l.lineTotal.WithinMinorUnit(computed)
	if err != nil {
		return err
	}
	if !ok {
		return &ArithmeticMismatchError{
			LineNumber: l.lineNumber,
			Field:      "lineTotal",
			Supplied:   l.lineTotal,
			Computed:   computed,
		}
	}

	return nil
}

func (l *Line) setLineNumber(lineNumber int) error {
	if lineNumber < 1 {
		return errs.NewValueIsOutOfRangeError("lineNumber", lineNumber, 1, maxLineNumber)
	}
	l.lineNumber = lineNumber
	return nil
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than or equal to 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setLineTotal(lineTotal kernel.Money) error {
	if err := lineTotal.Validate(); err != nil {
		return err
	}
	l.lineTotal = lineTotal
	return nil
}

// maxLineNumber bounds line numbers to the four digits EDI transaction sets allow.
const maxLineNumber = 9999
