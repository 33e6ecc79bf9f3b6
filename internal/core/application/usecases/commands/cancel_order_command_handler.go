package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderDocumentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderDocumentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
// A terminal order rejects it with TerminalStateError and nothing changes.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.PONumber()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
