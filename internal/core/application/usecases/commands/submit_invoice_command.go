package commands

import (
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/pkg/guard"
)

var ErrSubmitInvoiceCommandIsNotConstructed = errors.New(
	"SubmitInvoiceCommand must be created via NewSubmitInvoiceCommand constructor",
)

// SubmitInvoiceCommand represents a seller's invoice arriving for an order.
// Invoices do not drive a lifecycle transition; they are linked and stored so
// the set stays arithmetically and referentially complete for settlement.
type SubmitInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoice *document.Invoice

	guard guard.ConstructorGuard
}

// NewSubmitInvoiceCommand creates a command to submit an invoice.
func NewSubmitInvoiceCommand(inv *document.Invoice) (SubmitInvoiceCommand, error) {
	cmd := SubmitInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoice(inv); err != nil {
		return SubmitInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSubmitInvoiceCommandIsNotConstructed)
}

// Invoice returns the submitted invoice.
func (c SubmitInvoiceCommand) Invoice() *document.Invoice {
	return c.invoice
}

func (c *SubmitInvoiceCommand) setInvoice(inv *document.Invoice) error {
	if inv == nil {
		return errors.New("invoice is required")
	}
	if err := inv.Validate(); err != nil {
		return err
	}

	c.invoice = inv
	return nil
}
