package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/core/domain/services"
	"cannacommerce/internal/core/ports"
	"cannacommerce/internal/pkg/errs"
)

// SubmitShipNoticeCommandHandler handles the business logic for an advance
// ship notice. In one transaction it links the notice into the document set,
// records the shipment against the order lifecycle, and appends a custody
// transfer from seller to buyer for every batch-bearing line.
type SubmitShipNoticeCommandHandler struct {
	uowFactory ShipmentUoWFactory
	linker     services.DocumentLinker
}

// NewSubmitShipNoticeCommandHandler creates a handler for ship notice submission.
func NewSubmitShipNoticeCommandHandler(uowFactory ShipmentUoWFactory) SubmitShipNoticeCommandHandler {
	return SubmitShipNoticeCommandHandler{
		uowFactory: uowFactory,
		linker:     services.NewDocumentLinker(),
	}
}

// Handle processes the ship notice submission.
// A consistency violation, an illegal lifecycle transition, or a custody gap
// rolls everything back.
func (h *SubmitShipNoticeCommandHandler) Handle(ctx context.Context, cmd SubmitShipNoticeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	asn := cmd.ShipNotice()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	set, err := uow.DocumentRepository().GetSet(ctx, asn.PONumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return &services.OrphanDocumentError{
				Kind:        asn.Kind(),
				DocumentRef: asn.Number(),
				PONumber:    asn.PONumber(),
			}
		}
		return err
	}

	_, violations := h.linker.Link(set.PurchaseOrder(),
		set.Acknowledgments(), append(set.ShipNotices(), asn), set.Invoices())
	if len(violations) > 0 {
		return &ConsistencyViolationsError{PONumber: asn.PONumber(), Violations: violations}
	}

	aggregate, err := uow.OrderRepository().GetByPONumber(ctx, asn.PONumber())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Acknowledged {
		if err = aggregate.StartProcessing(asn.Number()); err != nil {
			return err
		}
	}

	shippedUnits := 0
	for _, line := range asn.Lines() {
		shippedUnits += line.Quantity()
	}
	if err = aggregate.RecordShipment(asn.Number(), shippedUnits); err != nil {
		return err
	}

	if err = h.appendCustody(ctx, uow.CustodyRepository(), set.PurchaseOrder(), asn); err != nil {
		return err
	}

	if err = uow.DocumentRepository().AddShipNotice(ctx, asn); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// appendCustody records the seller-to-buyer transfer for each batch-bearing
// line. A batch seen for the first time opens its ledger at the seller's
// license, the origin holder for goods this system first observes at shipment.
func (h *SubmitShipNoticeCommandHandler) appendCustody(
	ctx context.Context,
	repo ports.CustodyRepository,
	po *document.PurchaseOrder,
	asn *document.ShipNotice,
) error {
	seller := po.SellerGLN()
	receiver := po.BuyerGLN()
	if po.ShipToGLN() != nil {
		receiver = *po.ShipToGLN()
	}

	seen := make(map[string]struct{})
	for _, line := range asn.Lines() {
		batch := line.BatchNumber()
		if batch == "" || line.Quantity() == 0 {
			continue
		}
		if _, dup := seen[batch]; dup {
			continue
		}
		seen[batch] = struct{}{}

		chain, err := repo.GetChain(ctx, batch)
		if errors.Is(err, errs.ErrObjectNotFound) {
			chain, err = custody.NewChain(batch, seller)
			if err != nil {
				return err
			}
			if err = repo.AddChain(ctx, chain); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		from := chain.CurrentHolder()
		event, err := custody.NewEvent(asn.ShipDate(), &from, receiver, custody.EventTransfer)
		if err != nil {
			return err
		}

		sequenced, err := chain.Append(event)
		if err != nil {
			return err
		}
		if err = repo.AppendEvent(ctx, batch, sequenced); err != nil {
			return err
		}
	}
	return nil
}
