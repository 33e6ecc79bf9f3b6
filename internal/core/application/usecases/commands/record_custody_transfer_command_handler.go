package commands

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/pkg/errs"
)

// RecordCustodyTransferCommandHandler handles the business logic for custody
// events. The batch's ledger is loaded and replayed, the event is appended
// under the domain invariants, and the sequenced entry is persisted.
type RecordCustodyTransferCommandHandler struct {
	uowFactory CustodyUoWFactory
}

// NewRecordCustodyTransferCommandHandler creates a handler for custody events.
func NewRecordCustodyTransferCommandHandler(uowFactory CustodyUoWFactory) RecordCustodyTransferCommandHandler {
	return RecordCustodyTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custody event.
// A batch without a ledger opens one at the event's sending holder, which the
// gap rule then requires to be the origin license. A custody gap or backward
// timestamp rolls the append back.
func (h *RecordCustodyTransferCommandHandler) Handle(ctx context.Context, cmd RecordCustodyTransferCommand) error {
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

	repo := uow.CustodyRepository()

	chain, err := repo.GetChain(ctx, cmd.BatchNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		chain, err = custody.NewChain(cmd.BatchNumber(), cmd.FromHolder())
		if err != nil {
			return err
		}
		if err = repo.AddChain(ctx, chain); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	from := cmd.FromHolder()
	event, err := custody.NewEvent(cmd.OccurredAt(), &from, cmd.ToHolder(), cmd.EventType())
	if err != nil {
		return err
	}

	sequenced, err := chain.Append(event)
	if err != nil {
		return err
	}

	if err = repo.AppendEvent(ctx, cmd.BatchNumber(), sequenced); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
