// Package document provides the commerce document entities exchanged between
// trading partners: PurchaseOrder, Acknowledgment, ShipNotice, and Invoice.
// The four kinds share a common line-item shape and are correlated by purchase
// order number.
//
// Key business rules:
//   - Every line total must equal quantity times unit price to the currency's
//     minor-unit precision
//   - Every document subtotal must equal the sum of its line totals, and the
//     total must equal subtotal plus tax
//   - Documents are immutable once constructed; amendments are new documents
//   - All embedded GS1 identifiers are validated before a document exists
//
// Arithmetic violations are fatal at construction: a document that fails
// reconciliation is never created. Cross-document consistency (orphan numbers,
// unmatched lines, cumulative over-shipment) is the concern of the
// services.DocumentLinker, which operates on already-valid documents.
package document
