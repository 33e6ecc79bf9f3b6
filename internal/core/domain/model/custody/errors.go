package custody

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
)

var (
	// ErrCustodyGap indicates an appended event whose sending holder does not
	// match the ledger's current holder.
	ErrCustodyGap = errors.New("custody gap")

	// ErrNonMonotonicTime indicates an appended event timestamped before the
	// ledger's latest event.
	ErrNonMonotonicTime = errors.New("non-monotonic custody time")
)

// CustodyGapError reports a break in the holder chain: the event's fromHolder
// is not the holder the ledger says currently has the batch.
type CustodyGapError struct {
	BatchNumber string
	Expected    kernel.GLN
	Actual      *kernel.GLN
}

func (e *CustodyGapError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("%s: batch %s is held by %s, event names no sender",
			ErrCustodyGap, e.BatchNumber, e.Expected)
	}
	return fmt.Sprintf("%s: batch %s is held by %s, event names sender %s",
		ErrCustodyGap, e.BatchNumber, e.Expected, e.Actual)
}

func (e *CustodyGapError) Unwrap() error {
	return ErrCustodyGap
}

// NonMonotonicTimeError reports an event timestamped before the ledger's tail.
type NonMonotonicTimeError struct {
	BatchNumber string
	Latest      time.Time
	Attempted   time.Time
}

func (e *NonMonotonicTimeError) Error() string {
	return fmt.Sprintf("%s: batch %s ledger ends at %s, event is timestamped %s",
		ErrNonMonotonicTime, e.BatchNumber,
		e.Latest.Format(time.RFC3339), e.Attempted.Format(time.RFC3339))
}

func (e *NonMonotonicTimeError) Unwrap() error {
	return ErrNonMonotonicTime
}
