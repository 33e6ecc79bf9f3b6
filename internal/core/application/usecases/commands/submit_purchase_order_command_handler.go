package commands

import (
	"context"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
)

// SubmitPurchaseOrderCommandHandler handles the business logic for purchase
// order submission: it stores the document and opens the order lifecycle in
// submitted status, stamping the submission time from the injected clock.
type SubmitPurchaseOrderCommandHandler struct {
	uowFactory OrderDocumentUoWFactory
	now        func() time.Time
}

// NewSubmitPurchaseOrderCommandHandler creates a handler for purchase order
// submission. The clock is injected so tests can supply deterministic time.
func NewSubmitPurchaseOrderCommandHandler(
	uowFactory OrderDocumentUoWFactory,
	now func() time.Time,
) SubmitPurchaseOrderCommandHandler {
	return SubmitPurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the purchase order submission.
// Persists the document and the new order atomically; on any failure the
// transaction rolls back and nothing is visible.
func (h *SubmitPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd SubmitPurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	po := cmd.PurchaseOrder()

	orderedUnits := 0
	for _, line := range po.Lines() {
		orderedUnits += line.Quantity()
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), po.PONumber(),
		po.BuyerGLN(), po.SellerGLN(), orderedUnits)
	if err != nil {
		return err
	}
	if err = aggregate.Submit(h.now()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DocumentRepository().AddPurchaseOrder(ctx, po); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
