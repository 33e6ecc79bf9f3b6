package ports

import (
	"context"

	"cannacommerce/internal/core/domain/model/document"
)

// DocumentRepository defines the persistence contract for commerce documents.
// Documents are immutable once stored; the repository only ever adds to and
// reads from a PO number's document set.
type DocumentRepository interface {
	// AddPurchaseOrder persists a new purchase order. The PO number must not
	// already be taken.
	AddPurchaseOrder(ctx context.Context, po *document.PurchaseOrder) error

	// AddAcknowledgment persists a seller acknowledgment.
	AddAcknowledgment(ctx context.Context, ack *document.Acknowledgment) error

	// AddShipNotice persists an advance ship notice.
	AddShipNotice(ctx context.Context, asn *document.ShipNotice) error

	// AddInvoice persists an invoice.
	AddInvoice(ctx context.Context, inv *document.Invoice) error

	// GetSet retrieves every stored document sharing the PO number, assembled
	// into a set. Returns errs.ErrObjectNotFound when no purchase order exists
	// for the number.
	GetSet(ctx context.Context, poNumber string) (*document.Set, error)
}
