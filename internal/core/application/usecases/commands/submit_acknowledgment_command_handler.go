package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/pkg/errs"
)

// SubmitAcknowledgmentCommandHandler handles the business logic for a seller
// acknowledgment: it links the document into the PO number's set, rejects it
// on any consistency violation, and applies the implied lifecycle transition.
type SubmitAcknowledgmentCommandHandler struct {
	uowFactory OrderDocumentUoWFactory
	linker     services.DocumentLinker
}

// NewSubmitAcknowledgmentCommandHandler creates a handler for acknowledgment submission.
func NewSubmitAcknowledgmentCommandHandler(
	uowFactory OrderDocumentUoWFactory,
) SubmitAcknowledgmentCommandHandler {
	return SubmitAcknowledgmentCommandHandler{
		uowFactory: uowFactory,
		linker:     services.NewDocumentLinker(),
	}
}

// Handle processes the acknowledgment submission.
// The document, the order transition, and the set membership change together
// or not at all.
func (h *SubmitAcknowledgmentCommandHandler) Handle(ctx context.Context, cmd SubmitAcknowledgmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ack := cmd.Acknowledgment()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	set, err := uow.DocumentRepository().GetSet(ctx, ack.PONumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return &services.OrphanDocumentError{
				Kind:        ack.Kind(),
				DocumentRef: ack.Number(),
				PONumber:    ack.PONumber(),
			}
		}
		return err
	}

	_, violations := h.linker.Link(set.PurchaseOrder(),
		append(set.Acknowledgments(), ack), set.ShipNotices(), set.Invoices())
	if len(violations) > 0 {
		return &ConsistencyViolationsError{PONumber: ack.PONumber(), Violations: violations}
	}

	aggregate, err := uow.OrderRepository().GetByPONumber(ctx, ack.PONumber())
	if err != nil {
		return err
	}

	rejected := ack.Status() == document.AckRejected
	if err = aggregate.Acknowledge(ack.Number(), rejected); err != nil {
		return err
	}

	if err = uow.DocumentRepository().AddAcknowledgment(ctx, ack); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
