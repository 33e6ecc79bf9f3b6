package custody

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when validating a zero-value Event.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// EventType classifies a custody event.
type EventType int

const (
	// EventUnknown represents an invalid or undefined event type.
	EventUnknown EventType = iota

	// EventTransfer moves custody between two license holders.
	EventTransfer

	// EventSale transfers custody to a consumer-facing holder at sale.
	EventSale

	// EventDestruction records regulated disposal, ending the chain.
	EventDestruction

	// EventCorrection amends an earlier entry by sequence number without
	// changing who holds the batch.
	EventCorrection
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:     "unknown",
		EventTransfer:    "transfer",
		EventSale:        "sale",
		EventDestruction: "destruction",
		EventCorrection:  "correction",
	}
}

// EventTypeFromString maps a wire-format event type name onto the enum.
func EventTypeFromString(s string) (EventType, error) {
	for et, str := range getEventTypeStrings() {
		if et != EventUnknown && str == s {
			return et, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause(
		"eventType", fmt.Errorf("%q is not a known custody event type", s))
}

// Validate checks if the EventType value is valid.
func (et EventType) Validate() error {
	if et == EventUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType", fmt.Errorf("%d is not a valid custody event type", et))
	}
	if _, ok := getEventTypeStrings()[et]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType", fmt.Errorf("%d is not a valid custody event type", et))
	}
	return nil
}

// String returns the wire-format name of the event type.
func (et EventType) String() string {
	if str, ok := getEventTypeStrings()[et]; ok {
		return str
	}
	return "unknown"
}

// Event is one entry in a batch's custody ledger. Its sequence number is
// assigned by the ledger on append and is zero until then.
type Event struct {
	seq         int
	timestamp   time.Time
	fromHolder  *kernel.GLN
	toHolder    kernel.GLN
	eventType   EventType
	correctsSeq int
	notes       string

	guard guard.ConstructorGuard
}

// NewEvent creates an unsequenced custody event.
//
// fromHolder may be nil only for inspection-style entries that a ledger will
// reject anyway; transfers into a ledger always name the sending holder.
func NewEvent(
	timestamp time.Time,
	fromHolder *kernel.GLN,
	toHolder kernel.GLN,
	eventType EventType,
) (Event, error) {
	e := Event{
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setHolders(fromHolder, toHolder),
		e.setEventType(eventType),
	); err != nil {
		return Event{}, err
	}

	if timestamp.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("timestamp")
	}
	if eventType == EventCorrection {
		return Event{}, errs.NewValueIsInvalidErrorWithCause(
			"eventType", errors.New("corrections are created via NewCorrectionEvent"))
	}

	return e, nil
}

// NewCorrectionEvent creates an amendment to the ledger entry at correctsSeq.
// Holders are carried over unchanged by the ledger; the correction only adds
// an annotation to the history.
func NewCorrectionEvent(
	timestamp time.Time,
	toHolder kernel.GLN,
	correctsSeq int,
	notes string,
) (Event, error) {
	if timestamp.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("timestamp")
	}
	if err := toHolder.Validate(); err != nil {
		return Event{}, err
	}
	if correctsSeq < 1 {
		return Event{}, errs.NewValueIsOutOfRangeError("correctsSeq", correctsSeq, 1, correctsSeq)
	}

	return Event{
		timestamp:   timestamp,
		toHolder:    toHolder,
		eventType:   EventCorrection,
		correctsSeq: correctsSeq,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Event was created through a constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Seq returns the ledger-assigned sequence number, zero before append.
func (e Event) Seq() int {
	return e.seq
}

// Timestamp returns when the custody change took place.
func (e Event) Timestamp() time.Time {
	return e.timestamp
}

// FromHolder returns the sending license holder, or nil.
func (e Event) FromHolder() *kernel.GLN {
	return e.fromHolder
}

// ToHolder returns the receiving license holder.
func (e Event) ToHolder() kernel.GLN {
	return e.toHolder
}

// Type returns the event classification.
func (e Event) Type() EventType {
	return e.eventType
}

// CorrectsSeq returns the sequence number a correction amends, zero otherwise.
func (e Event) CorrectsSeq() int {
	return e.correctsSeq
}

// Notes returns free-text remarks attached to the event.
func (e Event) Notes() string {
	return e.notes
}

// WithNotes returns a copy of the event carrying free-text remarks.
func (e Event) WithNotes(notes string) Event {
	e.notes = notes
	return e
}

func (e *Event) setHolders(fromHolder *kernel.GLN, toHolder kernel.GLN) error {
	if fromHolder != nil {
		if err := fromHolder.Validate(); err != nil {
			return err
		}
	}
	if err := toHolder.Validate(); err != nil {
		return err
	}
	e.fromHolder = fromHolder
	e.toHolder = toHolder
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}
