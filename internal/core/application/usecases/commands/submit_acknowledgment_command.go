package commands

import (
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/pkg/guard"
)

var ErrSubmitAcknowledgmentCommandIsNotConstructed = errors.New(
	"SubmitAcknowledgmentCommand must be created via NewSubmitAcknowledgmentCommand constructor",
)

// SubmitAcknowledgmentCommand represents a seller's acknowledgment arriving
// for an open order. An accepting acknowledgment moves the order forward; a
// rejecting one cancels it.
type SubmitAcknowledgmentCommand struct { //nolint:recvcheck //using for validation
	acknowledgment *document.Acknowledgment

	guard guard.ConstructorGuard
}

// NewSubmitAcknowledgmentCommand creates a command to submit an acknowledgment.
func NewSubmitAcknowledgmentCommand(ack *document.Acknowledgment) (SubmitAcknowledgmentCommand, error) {
	cmd := SubmitAcknowledgmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAcknowledgment(ack); err != nil {
		return SubmitAcknowledgmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitAcknowledgmentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitAcknowledgmentCommandIsNotConstructed)
}

// Acknowledgment returns the submitted acknowledgment.
func (c SubmitAcknowledgmentCommand) Acknowledgment() *document.Acknowledgment {
	return c.acknowledgment
}

func (c *SubmitAcknowledgmentCommand) setAcknowledgment(ack *document.Acknowledgment) error {
	if ack == nil {
		return errors.New("acknowledgment is required")
	}
	if err := ack.Validate(); err != nil {
		return err
	}

	c.acknowledgment = ack
	return nil
}
