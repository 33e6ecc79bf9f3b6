package commands

import (
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/pkg/guard"
)

var ErrSubmitShipNoticeCommandIsNotConstructed = errors.New(
	"SubmitShipNoticeCommand must be created via NewSubmitShipNoticeCommand constructor",
)

// SubmitShipNoticeCommand represents an advance ship notice arriving for an
// open order. Its quantities accumulate against the order's lines, and every
// batch-bearing line appends a custody transfer from seller to buyer.
type SubmitShipNoticeCommand struct { //nolint:recvcheck //using for validation
	shipNotice *document.ShipNotice

	guard guard.ConstructorGuard
}

// NewSubmitShipNoticeCommand creates a command to submit a ship notice.
func NewSubmitShipNoticeCommand(asn *document.ShipNotice) (SubmitShipNoticeCommand, error) {
	cmd := SubmitShipNoticeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipNotice(asn); err != nil {
		return SubmitShipNoticeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitShipNoticeCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShipNoticeCommandIsNotConstructed)
}

// ShipNotice returns the submitted ship notice.
func (c SubmitShipNoticeCommand) ShipNotice() *document.ShipNotice {
	return c.shipNotice
}

func (c *SubmitShipNoticeCommand) setShipNotice(asn *document.ShipNotice) error {
	if asn == nil {
		return errors.New("ship notice is required")
	}
	if err := asn.Validate(); err != nil {
		return err
	}

	c.shipNotice = asn
	return nil
}
