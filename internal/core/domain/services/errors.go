package services

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/document"
)

var (
	// ErrOrphanDocument indicates a document whose PO number matches no known
	// purchase order.
	ErrOrphanDocument = errors.New("orphan document")

	// ErrUnmatchedLine indicates a downstream document line with no
	// corresponding purchase order line.
	ErrUnmatchedLine = errors.New("unmatched line")

	// ErrOverShipment indicates cumulative shipped quantity exceeding the
	// ordered quantity on a line without an over-ship exception.
	ErrOverShipment = errors.New("over-shipment")
)

// OrphanDocumentError reports a document that references an unknown purchase order.
type OrphanDocumentError struct {
	Kind        document.Kind
	DocumentRef string
	PONumber    string
}

func (e *OrphanDocumentError) Error() string {
	return fmt.Sprintf("%s: %s %s references unknown PO %s",
		ErrOrphanDocument, e.Kind, e.DocumentRef, e.PONumber)
}

func (e *OrphanDocumentError) Unwrap() error {
	return ErrOrphanDocument
}

// UnmatchedLineError reports a downstream line that resolves to no purchase
// order line, by line number or by product reference.
type UnmatchedLineError struct {
	Kind        document.Kind
	DocumentRef string
	LineNumber  int
	SKU         string
}

func (e *UnmatchedLineError) Error() string {
	return fmt.Sprintf("%s: %s %s line %d (%s) matches no purchase order line",
		ErrUnmatchedLine, e.Kind, e.DocumentRef, e.LineNumber, e.SKU)
}

func (e *UnmatchedLineError) Unwrap() error {
	return ErrUnmatchedLine
}

// OverShipmentError reports the ship notice whose quantity pushed a line's
// cumulative shipments past the ordered quantity. It is a reported violation,
// not a fatal one: the caller decides whether to accept it as an exception.
type OverShipmentError struct {
	DocumentRef string
	PONumber    string
	LineNumber  int
	Ordered     int
	Shipped     int
}

func (e *OverShipmentError) Error() string {
	return fmt.Sprintf("%s: %s pushes PO %s line %d to %d shipped of %d ordered",
		ErrOverShipment, e.DocumentRef, e.PONumber, e.LineNumber, e.Shipped, e.Ordered)
}

func (e *OverShipmentError) Unwrap() error {
	return ErrOverShipment
}
