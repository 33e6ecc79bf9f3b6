package commands

import (
	"errors"

	"cannacommerce/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents withdrawing an open order. Cancellation is
// legal from any non-terminal lifecycle state.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber string
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The reason is
// free text kept for the audit trail and may be empty.
func NewCancelOrderCommand(poNumber, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setPONumber(poNumber); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// PONumber returns the cancelled order's correlation key.
func (c CancelOrderCommand) PONumber() string {
	return c.poNumber
}

// Reason returns the free-text cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return ErrPONumberIsRequired
	}

	c.poNumber = poNumber
	return nil
}
