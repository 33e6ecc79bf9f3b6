package custody

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrChainIsNotConstructed is returned when validating a zero-value Chain.
var ErrChainIsNotConstructed = errors.New("Chain must be created via NewChain constructor")

// Chain owns the ordered custody ledger for one regulated batch. Appends are
// the only mutation: each event must name the current holder as its sender,
// carry a timestamp no earlier than the ledger's tail, and receives the next
// sequence number. The first transfer must come from the batch's declared
// origin license holder.
type Chain struct {
	batchNumber  string
	originHolder kernel.GLN
	events       []Event

	guard guard.ConstructorGuard
}

// NewChain opens an empty ledger for a batch held by its origin license.
func NewChain(batchNumber string, originHolder kernel.GLN) (*Chain, error) {
	if batchNumber == "" {
		return nil, errs.NewValueIsRequiredError("batchNumber")
	}
	if err := originHolder.Validate(); err != nil {
		return nil, err
	}

	return &Chain{
		batchNumber:  batchNumber,
		originHolder: originHolder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreChain reconstructs a ledger from persisted events, replaying each
// append so a corrupted history fails to load rather than silently passing.
func RestoreChain(batchNumber string, originHolder kernel.GLN, events []Event) (*Chain, error) {
	chain, err := NewChain(batchNumber, originHolder)
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		if _, err := chain.Append(event); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// Validate checks that the Chain was created through a constructor.
func (c *Chain) Validate() error {
	return c.guard.Validate(ErrChainIsNotConstructed)
}

// BatchNumber returns the batch this ledger tracks.
func (c *Chain) BatchNumber() string {
	return c.batchNumber
}

// OriginHolder returns the license holder the batch started with.
func (c *Chain) OriginHolder() kernel.GLN {
	return c.originHolder
}

// Events returns a copy of the ledger in sequence order.
func (c *Chain) Events() []Event {
	return append([]Event(nil), c.events...)
}

// Len returns the number of ledger entries.
func (c *Chain) Len() int {
	return len(c.events)
}

// CurrentHolder returns who holds the batch now: the receiver of the latest
// non-correction event, or the origin license while the ledger is empty.
func (c *Chain) CurrentHolder() kernel.GLN {
	for i := len(c.events) - 1; i >= 0; i-- {
		if c.events[i].eventType != EventCorrection {
			return c.events[i].toHolder
		}
	}
	return c.originHolder
}

// Append adds an event to the ledger and returns it stamped with its sequence
// number. A custody gap or a backward timestamp rejects the event and leaves
// the ledger unchanged.
func (c *Chain) Append(event Event) (Event, error) {
	if err := errors.Join(c.Validate(), event.Validate()); err != nil {
		return Event{}, err
	}

	if last := c.latestTimestamp(); !last.IsZero() && event.timestamp.Before(last) {
		return Event{}, &NonMonotonicTimeError{
			BatchNumber: c.batchNumber,
			Latest:      last,
			Attempted:   event.timestamp,
		}
	}

	if event.eventType == EventCorrection {
		if event.correctsSeq > len(c.events) {
			return Event{}, errs.NewObjectNotFoundError("correctsSeq", event.correctsSeq)
		}
	} else {
		holder := c.CurrentHolder()
		if event.fromHolder == nil || !event.fromHolder.IsEqual(holder) {
			return Event{}, &CustodyGapError{
				BatchNumber: c.batchNumber,
				Expected:    holder,
				Actual:      event.fromHolder,
			}
		}
		if err := c.checkNotEnded(event); err != nil {
			return Event{}, err
		}
	}

	event.seq = len(c.events) + 1
	c.events = append(c.events, event)
	return event, nil
}

// latestTimestamp returns the tail event's timestamp, zero for an empty ledger.
func (c *Chain) latestTimestamp() time.Time {
	if len(c.events) == 0 {
		return time.Time{}
	}
	return c.events[len(c.events)-1].timestamp
}

// checkNotEnded rejects transfers after a destruction event closed the chain.
func (c *Chain) checkNotEnded(event Event) error {
	for i := len(c.events) - 1; i >= 0; i-- {
		if c.events[i].eventType == EventCorrection {
			continue
		}
		if c.events[i].eventType == EventDestruction {
			return errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf(
				"batch %s was destroyed at seq %d, cannot append %s",
				c.batchNumber, c.events[i].seq, event.eventType))
		}
		return nil
	}
	return nil
}
