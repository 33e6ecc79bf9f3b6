package services

import (
	"cannacommerce/internal/core/domain/model/document"
)

// DocumentLinker is the domain service that cross-checks the documents sharing
// one PO number and assembles them into a consistent document set.
//
// Key responsibilities:
//   - Correlating acknowledgments, ship notices, and invoices to their
//     purchase order by PO number
//   - Resolving each downstream line to its purchase order line, by line
//     number first and by product reference when documents were renumbered
//   - Enforcing the quantity-accumulation rule across ship notices
//
// Link collects every violation it finds instead of stopping at the first,
// so a caller can display or resolve all issues at once. Documents that
// correlate to the purchase order are attached to the returned set even when
// they carry line violations; only orphans stay out.
type DocumentLinker struct{}

// NewDocumentLinker creates a new DocumentLinker instance.
func NewDocumentLinker() DocumentLinker {
	return DocumentLinker{}
}

// Link assembles a document set from a purchase order and the documents
// submitted against it.
//
// Parameters:
//   - po: The purchase order opening the set (must be valid)
//   - acks, asns, invoices: Documents to correlate, in submission order
//
// Returns:
//   - *document.Set: The assembled set, nil only when the purchase order
//     itself is invalid
//   - []error: Every violation found; empty when the set is fully consistent
//
// Violations:
//   - OrphanDocumentError for a document referencing another PO number
//   - UnmatchedLineError for a line resolving to no purchase order line
//   - OverShipmentError for the ship notice that pushes a line's cumulative
//     quantity past the ordered quantity without an over-ship exception
func (dl DocumentLinker) Link(
	po *document.PurchaseOrder,
	acks []*document.Acknowledgment,
	asns []*document.ShipNotice,
	invoices []*document.Invoice,
) (*document.Set, []error) {
	set, err := document.NewSet(po)
	if err != nil {
		return nil, []error{err}
	}

	var violations []error

	for _, ack := range acks {
		if !dl.correlate(set, po, ack, &violations) {
			continue
		}
		violations = append(violations, dl.matchLines(po, ack)...)
		_ = set.AttachAcknowledgment(ack)
	}

	for _, asn := range asns {
		if !dl.correlate(set, po, asn, &violations) {
			continue
		}
		violations = append(violations, dl.matchLines(po, asn)...)
		_ = set.AttachShipNotice(asn)
	}

	for _, inv := range invoices {
		if !dl.correlate(set, po, inv, &violations) {
			continue
		}
		violations = append(violations, dl.matchLines(po, inv)...)
		_ = set.AttachInvoice(inv)
	}

	violations = append(violations, dl.checkOverShipment(po, asns)...)

	return set, violations
}

// correlate reports whether the document belongs to the set's purchase order,
// recording an orphan violation when it does not.
func (dl DocumentLinker) correlate(
	set *document.Set,
	po *document.PurchaseOrder,
	doc document.Commercial,
	violations *[]error,
) bool {
	if doc.PONumber() != po.PONumber() {
		*violations = append(*violations, &OrphanDocumentError{
			Kind:        doc.Kind(),
			DocumentRef: doc.Number(),
			PONumber:    doc.PONumber(),
		})
		return false
	}
	return true
}

// matchLines resolves every line of a downstream document against the
// purchase order's lines.
func (dl DocumentLinker) matchLines(po *document.PurchaseOrder, doc document.Commercial) []error {
	var violations []error
	poLines := po.Lines()

	for _, line := range doc.Lines() {
		if _, ok := document.MatchLine(line, poLines); !ok {
			violations = append(violations, &UnmatchedLineError{
				Kind:        doc.Kind(),
				DocumentRef: doc.Number(),
				LineNumber:  line.LineNumber(),
				SKU:         line.SKU(),
			})
		}
	}
	return violations
}

// checkOverShipment walks ship notices in submission order, accumulating the
// shipped quantity per purchase order line. The violation names the notice
// whose shipment crossed the ordered quantity; later notices for an already
// breached line are not reported again.
func (dl DocumentLinker) checkOverShipment(
	po *document.PurchaseOrder,
	asns []*document.ShipNotice,
) []error {
	var violations []error

	for _, poLine := range po.Lines() {
		if poLine.OverShipAllowed() {
			continue
		}

		shipped := 0
		for _, asn := range asns {
			if asn.PONumber() != po.PONumber() {
				continue
			}
			match, ok := document.MatchLine(poLine, asn.Lines())
			if !ok || match.Quantity() == 0 {
				continue
			}

			shipped += match.Quantity()
			if shipped > poLine.Quantity() {
				violations = append(violations, &OverShipmentError{
					DocumentRef: asn.Number(),
					PONumber:    po.PONumber(),
					LineNumber:  poLine.LineNumber(),
					Ordered:     poLine.Quantity(),
					Shipped:     shipped,
				})
				break
			}
		}
	}
	return violations
}
