package document

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/kernel"
)

// ErrArithmeticMismatch indicates that a supplied monetary value disagrees with
// the value recomputed from its parts beyond the currency's minor-unit epsilon.
var ErrArithmeticMismatch = errors.New("arithmetic mismatch")

// ArithmeticMismatchError reports a line or total whose supplied value differs
// from the recomputed value. LineNumber is zero for document-level totals.
type ArithmeticMismatchError struct {
	DocumentRef string
	LineNumber  int
	Field       string
	Supplied    kernel.Money
	Computed    kernel.Money
}

func (e *ArithmeticMismatchError) Error() string {
	ref := e.DocumentRef
	if ref != "" {
		ref += " "
	}
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s: %sline %d %s is %s, computed %s",
			ErrArithmeticMismatch, ref, e.LineNumber, e.Field, e.Supplied, e.Computed)
	}
	return fmt.Sprintf("%s: %s%s is %s, computed %s",
		ErrArithmeticMismatch, ref, e.Field, e.Supplied, e.Computed)
}

func (e *ArithmeticMismatchError) Unwrap() error {
	return ErrArithmeticMismatch
}
