// Package services provides domain services that orchestrate business
// operations across multiple domain entities. It implements logic that spans
// aggregates and therefore belongs to no single one of them.
//
// The package includes:
//   - DocumentLinker: A domain service cross-checking the documents that share
//     one PO number and assembling them into a consistent document set
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
