package commands

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/guard"
)

var (
	ErrTransferStockCommandIsNotConstructed = errors.New(
		"TransferStockCommand must be created via NewTransferStockCommand constructor",
	)
	ErrSKUIsRequired      = errors.New("sku is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
	ErrOccurredAtRequired = errors.New("occurred-at time is required")
)

// TransferStockCommand represents moving stock of one product between two of
// the operator's locations. The outbound and inbound sides update atomically,
// and the movement joins the immutable history.
type TransferStockCommand struct { //nolint:recvcheck //using for validation
	sku          string
	fromLocation kernel.GLN
	toLocation   kernel.GLN
	quantity     int
	batchNumber  string
	occurredAt   time.Time

	guard guard.ConstructorGuard
}

// NewTransferStockCommand creates a command to transfer stock between locations.
func NewTransferStockCommand(
	sku string,
	fromLocation, toLocation kernel.GLN,
	quantity int,
	batchNumber string,
	occurredAt time.Time,
) (TransferStockCommand, error) {
	cmd := TransferStockCommand{
		batchNumber: batchNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setLocations(fromLocation, toLocation),
		cmd.setQuantity(quantity),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return TransferStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferStockCommand) Validate() error {
	return c.guard.Validate(ErrTransferStockCommandIsNotConstructed)
}

// SKU returns the moved product's reference.
func (c TransferStockCommand) SKU() string {
	return c.sku
}

// FromLocation returns the source location.
func (c TransferStockCommand) FromLocation() kernel.GLN {
	return c.fromLocation
}

// ToLocation returns the destination location.
func (c TransferStockCommand) ToLocation() kernel.GLN {
	return c.toLocation
}

// Quantity returns the moved unit count.
func (c TransferStockCommand) Quantity() int {
	return c.quantity
}

// BatchNumber returns the regulated batch moved, empty if none.
func (c TransferStockCommand) BatchNumber() string {
	return c.batchNumber
}

// OccurredAt returns when the transfer took place.
func (c TransferStockCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *TransferStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *TransferStockCommand) setLocations(from, to kernel.GLN) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	c.fromLocation = from
	c.toLocation = to
	return nil
}

func (c *TransferStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *TransferStockCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtRequired
	}

	c.occurredAt = occurredAt
	return nil
}
