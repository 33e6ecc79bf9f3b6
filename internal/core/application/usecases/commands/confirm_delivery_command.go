package commands

import (
	"errors"
	"time"

	"cannacommerce/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrPONumberIsRequired    = errors.New("po number is required")
	ErrDeliveredAtIsRequired = errors.New("delivered-at time is required")
)

// ConfirmDeliveryCommand represents the buyer confirming receipt of a shipped
// order. Delivery closes the lifecycle and books the received stock into the
// buyer's inventory.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	poNumber    string
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of an order.
func NewConfirmDeliveryCommand(poNumber string, deliveredAt time.Time) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPONumber(poNumber),
		cmd.setDeliveredAt(deliveredAt),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// PONumber returns the delivered order's correlation key.
func (c ConfirmDeliveryCommand) PONumber() string {
	return c.poNumber
}

// DeliveredAt returns when the buyer received the goods.
func (c ConfirmDeliveryCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *ConfirmDeliveryCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return ErrPONumberIsRequired
	}

	c.poNumber = poNumber
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return ErrDeliveredAtIsRequired
	}

	c.deliveredAt = deliveredAt
	return nil
}
