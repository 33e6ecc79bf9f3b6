package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
)

// TransferStockCommandHandler handles the business logic for stock transfers.
// Both stock positions and the movement record change in one transaction; an
// insufficient source balance rejects the whole transfer.
type TransferStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewTransferStockCommandHandler creates a handler for stock transfers.
func NewTransferStockCommandHandler(uowFactory InventoryUoWFactory) TransferStockCommandHandler {
	return TransferStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer.
// The source position must exist; the destination is created on first use.
func (h *TransferStockCommandHandler) Handle(ctx context.Context, cmd TransferStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	from := cmd.FromLocation()
	to := cmd.ToLocation()

	movement, err := inventory.NewStockMovement(kernel.NewUUID(), cmd.SKU(),
		inventory.Transfer, cmd.Quantity(), &from, &to, cmd.OccurredAt())
	if err != nil {
		return err
	}
	if cmd.BatchNumber() != "" {
		movement = movement.WithBatchNumber(cmd.BatchNumber())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()

	source, err := repo.GetItem(ctx, cmd.SKU(), from)
	if err != nil {
		return err
	}

	destination, err := repo.GetItem(ctx, cmd.SKU(), to)
	if errors.Is(err, errs.ErrObjectNotFound) {
		destination, err = inventory.NewItem(kernel.NewUUID(), cmd.SKU(), to)
		if err != nil {
			return err
		}
		if err = repo.AddItem(ctx, destination); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if err = source.ApplyMovement(movement); err != nil {
		return err
	}
	if err = destination.ApplyMovement(movement); err != nil {
		return err
	}

	if err = repo.AddMovement(ctx, movement); err != nil {
		return err
	}
	if err = repo.UpdateItem(ctx, source); err != nil {
		return err
	}
	if err = repo.UpdateItem(ctx, destination); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
