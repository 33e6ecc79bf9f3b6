package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/ports"
	"cannacommerce/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler handles the business logic for delivery
// confirmation. The order moves to its delivered terminal state and each
// shipped line is received into the buyer's stock position as an inbound
// movement, creating the position on first receipt.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation.
// The lifecycle transition and every stock receipt commit atomically.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByPONumber(ctx, cmd.PONumber())
	if err != nil {
		return err
	}

	if err = aggregate.Deliver(cmd.PONumber()); err != nil {
		return err
	}

	set, err := uow.DocumentRepository().GetSet(ctx, cmd.PONumber())
	if err != nil {
		return err
	}

	if err = h.receiveStock(ctx, uow.InventoryRepository(), set, cmd); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// receiveStock books each shipped line into the delivery location's inventory.
// Quantities come from the cumulative shipments, not the ordered amounts, so a
// tolerated over- or under-shipment books what actually arrived.
func (h *ConfirmDeliveryCommandHandler) receiveStock(
	ctx context.Context,
	repo ports.InventoryRepository,
	set *document.Set,
	cmd ConfirmDeliveryCommand,
) error {
	po := set.PurchaseOrder()
	location := po.BuyerGLN()
	if po.ShipToGLN() != nil {
		location = *po.ShipToGLN()
	}

	for _, line := range po.Lines() {
		received := set.CumulativeShipped(line)
		if received == 0 {
			continue
		}

		item, err := repo.GetItem(ctx, line.SKU(), location)
		if errors.Is(err, errs.ErrObjectNotFound) {
			item, err = inventory.NewItem(kernel.NewUUID(), line.SKU(), location)
			if err != nil {
				return err
			}
			if err = repo.AddItem(ctx, item); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(kernel.NewUUID(), line.SKU(),
			inventory.Receipt, received, nil, &location, cmd.DeliveredAt())
		if err != nil {
			return err
		}
		if batch := line.BatchNumber(); batch != "" {
			movement = movement.WithBatchNumber(batch)
		}

		if err = item.ApplyMovement(movement); err != nil {
			return err
		}
		if err = repo.AddMovement(ctx, movement); err != nil {
			return err
		}
		if err = repo.UpdateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
