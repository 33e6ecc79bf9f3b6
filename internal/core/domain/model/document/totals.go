package document

import (
	"fmt"
	"sort"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
)

// validateLines checks that a document's line sequence is well formed:
// at least one line, every line constructed via NewLine, and line numbers
// unique within the document. The supplied order is preserved for audit.
func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[int]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.lineNumber]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"lineNumber", fmt.Errorf("line number %d appears more than once", line.lineNumber))
		}
		seen[line.lineNumber] = struct{}{}
	}

	return nil
}

// reconcileTotals verifies the two document-level arithmetic invariants:
// subtotal equals the sum of line totals, and total equals subtotal plus tax.
// The sum is accumulated in line-number order; intermediate results are exact
// decimals and are never truncated before the final comparison.
func reconcileTotals(docRef string, lines []Line, subtotal, taxTotal, total kernel.Money) error {
	ordered := make([]Line, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].lineNumber < ordered[j].lineNumber })

	computedSubtotal, err := kernel.Zero(subtotal.Currency())
	if err != nil {
		return err
	}
	for _, line := range ordered {
		computedSubtotal, err = computedSubtotal.Add(line.lineTotal)
		if err != nil {
			return err
		}
	}

	ok, err := subtotal.WithinMinorUnit(computedSubtotal)
	if err != nil {
		return err
	}
	if !ok {
		return &ArithmeticMismatchError{
			DocumentRef: docRef,
			Field:       "subtotal",
			Supplied:    subtotal,
			Computed:    computedSubtotal,
		}
	}

	computedTotal, err := subtotal.Add(taxTotal)
	if err != nil {
		return err
	}
	ok, err = total.WithinMinorUnit(computedTotal)
	if err != nil {
		return err
	}
	if !ok {
		return &ArithmeticMismatchError{
			DocumentRef: docRef,
			Field:       "total",
			Supplied:    total,
			Computed:    computedTotal,
		}
	}

	return nil
}

// copyLines returns a defensive copy so callers cannot mutate a document's
// line sequence through the returned slice.
func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
