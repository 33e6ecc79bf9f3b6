package commands

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/guard"
)

var (
	ErrRecordCustodyTransferCommandIsNotConstructed = errors.New(
		"RecordCustodyTransferCommand must be created via NewRecordCustodyTransferCommand constructor",
	)
	ErrBatchNumberIsRequired = errors.New("batch number is required")
)

// RecordCustodyTransferCommand represents one custody event for a regulated
// batch: a transfer, sale, or destruction reported by an adapter. The ledger
// enforces the holder chain and time ordering on append.
type RecordCustodyTransferCommand struct { //nolint:recvcheck //using for validation
	batchNumber string
	fromHolder  kernel.GLN
	toHolder    kernel.GLN
	eventType   custody.EventType
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewRecordCustodyTransferCommand creates a command to append a custody event.
func NewRecordCustodyTransferCommand(
	batchNumber string,
	fromHolder, toHolder kernel.GLN,
	eventType custody.EventType,
	occurredAt time.Time,
) (RecordCustodyTransferCommand, error) {
	cmd := RecordCustodyTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchNumber(batchNumber),
		cmd.setHolders(fromHolder, toHolder),
		cmd.setEventType(eventType),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return RecordCustodyTransferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCustodyTransferCommand) Validate() error {
	return c.guard.Validate(ErrRecordCustodyTransferCommandIsNotConstructed)
}

// BatchNumber returns the batch whose ledger the event extends.
func (c RecordCustodyTransferCommand) BatchNumber() string {
	return c.batchNumber
}

// FromHolder returns the license holder handing the batch over.
func (c RecordCustodyTransferCommand) FromHolder() kernel.GLN {
	return c.fromHolder
}

// ToHolder returns the license holder receiving the batch.
func (c RecordCustodyTransferCommand) ToHolder() kernel.GLN {
	return c.toHolder
}

// EventType returns the event classification.
func (c RecordCustodyTransferCommand) EventType() custody.EventType {
	return c.eventType
}

// OccurredAt returns when the custody change took place.
func (c RecordCustodyTransferCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *RecordCustodyTransferCommand) setBatchNumber(batchNumber string) error {
	if batchNumber == "" {
		return ErrBatchNumberIsRequired
	}

	c.batchNumber = batchNumber
	return nil
}

func (c *RecordCustodyTransferCommand) setHolders(from, to kernel.GLN) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	c.fromHolder = from
	c.toHolder = to
	return nil
}

func (c *RecordCustodyTransferCommand) setEventType(eventType custody.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	if eventType == custody.EventCorrection {
		return errors.New("corrections are recorded through their own flow")
	}

	c.eventType = eventType
	return nil
}

func (c *RecordCustodyTransferCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtRequired
	}

	c.occurredAt = occurredAt
	return nil
}
