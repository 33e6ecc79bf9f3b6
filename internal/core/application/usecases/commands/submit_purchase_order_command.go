package commands

import (
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/pkg/guard"
)

var ErrSubmitPurchaseOrderCommandIsNotConstructed = errors.New(
	"SubmitPurchaseOrderCommand must be created via NewSubmitPurchaseOrderCommand constructor",
)

// SubmitPurchaseOrderCommand represents a buyer submitting a purchase order.
// The purchase order arrives already reconciled by its constructor; submission
// opens the document set and the order lifecycle for its PO number.
//
// Example:
//
//	cmd, err := NewSubmitPurchaseOrderCommand(po)
//	if err != nil {
//	    return fmt.Errorf("invalid purchase order: %w", err)
//	}
//
//	handler := NewSubmitPurchaseOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit purchase order: %w", err)
//	}
type SubmitPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrder *document.PurchaseOrder

	guard guard.ConstructorGuard
}

// NewSubmitPurchaseOrderCommand creates a command to submit a purchase order.
func NewSubmitPurchaseOrderCommand(po *document.PurchaseOrder) (SubmitPurchaseOrderCommand, error) {
	cmd := SubmitPurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPurchaseOrder(po); err != nil {
		return SubmitPurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPurchaseOrderCommandIsNotConstructed)
}

// PurchaseOrder returns the submitted purchase order.
func (c SubmitPurchaseOrderCommand) PurchaseOrder() *document.PurchaseOrder {
	return c.purchaseOrder
}

func (c *SubmitPurchaseOrderCommand) setPurchaseOrder(po *document.PurchaseOrder) error {
	if po == nil {
		return errors.New("purchase order is required")
	}
	if err := po.Validate(); err != nil {
		return err
	}

	c.purchaseOrder = po
	return nil
}
