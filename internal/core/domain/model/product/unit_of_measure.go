package product

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// UnitOfMeasure identifies how a line quantity is counted: discrete units,
// weight, or volume. Regulated flower is typically sold by the gram or ounce,
// while edibles and accessories are sold each or by the pack.
type UnitOfMeasure int

const (
	// UnitUnknown represents an invalid or undefined unit of measure.
	UnitUnknown UnitOfMeasure = iota

	// Each counts discrete sellable units.
	Each

	// Gram measures weight in grams.
	Gram

	// Ounce measures weight in ounces.
	Ounce

	// Milligram measures weight in milligrams, used for potency-dosed items.
	Milligram

	// Milliliter measures liquid volume, used for tinctures.
	Milliliter

	// Pack counts pre-packaged multi-unit bundles.
	Pack
)

func getUnitStrings() map[UnitOfMeasure]string {
	return map[UnitOfMeasure]string{
		UnitUnknown: "unknown",
		Each:        "each",
		Gram:        "gram",
		Ounce:       "ounce",
		Milligram:   "milligram",
		Milliliter:  "milliliter",
		Pack:        "pack",
	}
}

// UnitOfMeasureFromString maps a wire-format unit name onto the enum.
// Unknown names are rejected at the boundary rather than propagated.
func UnitOfMeasureFromString(s string) (UnitOfMeasure, error) {
	for unit, str := range getUnitStrings() {
		if unit != UnitUnknown && str == s {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"unitOfMeasure", fmt.Errorf("%q is not a known unit of measure", s))
}

// Validate checks if the UnitOfMeasure value is valid.
// UnitUnknown (0) and out-of-range values are invalid.
func (u UnitOfMeasure) Validate() error {
	if u == UnitUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitOfMeasure", fmt.Errorf("%d is not a valid unit of measure", u))
	}
	if _, ok := getUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitOfMeasure", fmt.Errorf("%d is not a valid unit of measure", u))
	}
	return nil
}

// String returns the wire-format name of the unit.
// This method implements the fmt.Stringer interface.
func (u UnitOfMeasure) String() string {
	if str, ok := getUnitStrings()[u]; ok {
		return str
	}
	return "unknown"
}
