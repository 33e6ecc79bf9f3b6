// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"
	"fmt"

	"cannacommerce/internal/core/ports"
)

// ErrConsistencyViolations indicates a submitted document that failed the
// document consistency checks; the wrapped violations carry the detail.
var ErrConsistencyViolations = errors.New("document failed consistency checks")

// ConsistencyViolationsError bundles every violation found while linking a
// submitted document into its PO number's document set. The document is not
// persisted and the order lifecycle is left unchanged.
type ConsistencyViolationsError struct {
	PONumber   string
	Violations []error
}

func (e *ConsistencyViolationsError) Error() string {
	return fmt.Sprintf("%s: PO %s has %d violation(s): %s",
		ErrConsistencyViolations, e.PONumber, len(e.Violations), errors.Join(e.Violations...))
}

func (e *ConsistencyViolationsError) Unwrap() []error {
	return append([]error{ErrConsistencyViolations}, e.Violations...)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// CustodyRepoFactory provides access to the custody repository within a transaction.
	CustodyRepoFactory interface {
		CustodyRepository() ports.CustodyRepository
	}

	// OrderDocumentUoW manages transactions spanning the order lifecycle and
	// its document set. Used by document submissions that drive a transition.
	OrderDocumentUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
	}

	// OrderDocumentUoWFactory creates new OrderDocumentUoW instances.
	OrderDocumentUoWFactory interface {
		Create() OrderDocumentUoW
	}

	// ShipmentUoW adds the custody ledger to the document-submission scope:
	// a ship notice transitions the order and appends custody for every
	// batch-bearing line in one transaction.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
		CustodyRepoFactory
	}

	// ShipmentUoWFactory creates new ShipmentUoW instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// DeliveryUoW spans the order, its documents, and the buyer's inventory:
	// confirming delivery books the received stock.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
		InventoryRepoFactory
	}

	// DeliveryUoWFactory creates new DeliveryUoW instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// InventoryUoW manages transactions for stock-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new InventoryUoW instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// CustodyUoW manages transactions for custody-ledger-only operations.
	CustodyUoW interface {
		TxManager
		CustodyRepoFactory
	}

	// CustodyUoWFactory creates new CustodyUoW instances.
	CustodyUoWFactory interface {
		Create() CustodyUoW
	}
)
