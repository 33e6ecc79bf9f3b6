package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/pkg/errs"
)

// SubmitInvoiceCommandHandler handles the business logic for invoice
// submission: link into the document set, reject on violations, store.
type SubmitInvoiceCommandHandler struct {
	uowFactory OrderDocumentUoWFactory
	linker     services.DocumentLinker
}

// NewSubmitInvoiceCommandHandler creates a handler for invoice submission.
func NewSubmitInvoiceCommandHandler(uowFactory OrderDocumentUoWFactory) SubmitInvoiceCommandHandler {
	return SubmitInvoiceCommandHandler{
		uowFactory: uowFactory,
		linker:     services.NewDocumentLinker(),
	}
}

// Handle processes the invoice submission.
func (h *SubmitInvoiceCommandHandler) Handle(ctx context.Context, cmd SubmitInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	inv := cmd.Invoice()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	set, err := uow.DocumentRepository().GetSet(ctx, inv.PONumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return &services.OrphanDocumentError{
				Kind:        inv.Kind(),
				DocumentRef: inv.Number(),
				PONumber:    inv.PONumber(),
			}
		}
		return err
	}

	_, violations := h.linker.Link(set.PurchaseOrder(),
		set.Acknowledgments(), set.ShipNotices(), append(set.Invoices(), inv))
	if len(violations) > 0 {
		return &ConsistencyViolationsError{PONumber: inv.PONumber(), Violations: violations}
	}

	if err = uow.DocumentRepository().AddInvoice(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
